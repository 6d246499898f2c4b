package main

import "github.com/javiermmdev/rps/cmd/rps"

func main() { rps.Execute() }
