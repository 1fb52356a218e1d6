package probe

import (
	"errors"
	"fmt"
)

type Method string

const (
	ICMP Method = "icmp"
	TCP  Method = "tcp"
)

func ListMethods() []Method {
	return []Method{ICMP, TCP}
}

var ErrMethodUnknown = errors.New("probe method is unknown")

func ValidateMethod(method Method) error {
	for _, possible := range ListMethods() {
		if method == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMethodUnknown, method)
}
