package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler that publishes
// scheduled health posts once their publish time has passed.
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	_, err := c.AddFunc("* * * * *", publishScheduledPosts)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for health post publishing")
}

// publishScheduledPosts flips every due scheduled post to published.
func publishScheduledPosts() {
	result := db.DB.Model(&models.HealthPost{}).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", models.PostScheduled, time.Now()).
		Update("status", models.PostPublished)
	if result.Error != nil {
		log.Printf("Error publishing scheduled posts: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Published %d scheduled health post(s)", result.RowsAffected)
	}
}
