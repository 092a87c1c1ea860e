// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/pkgmerger/cmd/pkgmerger/cmd"
)

func main() {
	cmd.Execute()
}
