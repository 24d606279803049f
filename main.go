package main

import "github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/cmd"

func main() {
	cmd.Execute()
}
