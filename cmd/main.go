package main

import (
	"context"
	"log"
	"os"

	"github.com/lucas-hsi/melitusgym-sub000/config"
	"github.com/lucas-hsi/melitusgym-sub000/routes"
	"github.com/lucas-hsi/melitusgym-sub000/services"
	"github.com/lucas-hsi/melitusgym-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
	}

	services.InitAlertDeps(config.DB, rt, push, os.Getenv("SES_EMAIL") != "")

	alarms := services.NewAlarmService(push)
	go alarms.RunScheduler(context.Background())

	r := routes.SetupRouter(rt, push)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
