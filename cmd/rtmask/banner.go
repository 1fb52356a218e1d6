package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/rtmask/internal/models"
)

const bannerArt = `
    ######  #######       #     #    #     #####  #    #
    #     #    #          ##   ##   # #   #     # #   #
    #     #    #          # # # #  #   #  #       #  #
    ######     #    ##### #  #  # #     #  #####  ###
    #   #      #          #     # #######       # #  #
    #    #     #          #     # #     # #     # #   #
    #     #    #          #     # #     #  #####  #    #
`

func printBanner(buildInfo models.BuildInformation) {
	_, _ = color.New(color.FgCyan).Print(bannerArt, "\n")
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "rtmask",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}
