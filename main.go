package main

import "github.com/vidigest/digest-api/cmd"

// @title           Video Digest API
// @version         1.0.0
// @description     An API that turns video URLs into stored transcripts and LLM digests
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
