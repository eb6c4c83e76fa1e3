package main

import (
	"fmt"
	"os"

	"github.com/hwameistor/storage-console/pkg/consolectl/cmdparser"
)

func main() {
	err := cmdparser.Consolectl.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
