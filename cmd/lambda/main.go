package main

import (
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"message-processor/internal/config"
	"message-processor/pkg/server"
)

func main() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err := server.NewContainer(cfg, os.Stdout)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	awslambda.Start(container.EventHandler)
}
