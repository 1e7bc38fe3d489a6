package main

import "github.com/Youssef-Elmorali/blood-project-frontend/cmd/qatrah-cli/cmd"

func main() {
	cmd.Execute()
}
