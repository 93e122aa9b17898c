package config

import "os"

func IsDebug() bool {
	return os.Getenv("QA_DEBUG") == "1"
}
