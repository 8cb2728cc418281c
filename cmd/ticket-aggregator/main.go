package main

import (
	"github.com/architeacher/svc-ticket-aggregator/internal/runtime"
)

func main() {
	runtime.New().Run()
}
