package main

import (
	"os"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
