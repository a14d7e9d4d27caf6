package main

import (
	"context"
	"log"

	"github.com/dalemusser/datavizz/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	bootstrap.ApplyDeploymentEnv()
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
