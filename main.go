package main

import (
	"time"

	"github.com/shandysiswandi/arffview/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	application := app.New()

	<-application.Start()
	application.Shutdown(shutdownTimeout)
}
