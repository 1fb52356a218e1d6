package config

type Warner interface {
	Warnf(format string, a ...interface{})
}
