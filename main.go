package main

import "github.com/caresetu/caresetu_backend/cmd"

func main() {
	cmd.Execute()
}
