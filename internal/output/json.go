package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/qdm12/rtmask/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON writes the results as an indented JSON array,
// with null values for absent optional fields.
func WriteJSON(w io.Writer, results []models.ConversionResult) error {
	if results == nil {
		results = []models.ConversionResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
