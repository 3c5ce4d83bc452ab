package main

import "taskchat-api/config"

func main() {
	config.RunServer()
}
