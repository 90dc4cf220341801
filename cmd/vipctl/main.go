// vipctl flips the VIP flag on a user. The bot itself never changes
// the flag; upgrades are confirmed manually and applied with this tool.
//
//	vipctl -db /data/thor.db -user 12345
//	vipctl -db /data/thor.db -user 12345 -revoke
package main

import (
	"flag"
	"log"

	"github.com/artur/thor-downloader/internal/database"
	"github.com/artur/thor-downloader/internal/database/repository"
)

func main() {
	dbPath := flag.String("db", "/data/thor.db", "path to the bot database")
	userID := flag.Int64("user", 0, "telegram user id")
	revoke := flag.Bool("revoke", false, "revoke VIP instead of granting it")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}

	db, err := database.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db.DB)

	if err := userRepo.SetVIP(*userID, !*revoke); err != nil {
		log.Fatalf("Failed to update vip flag: %v", err)
	}

	user, err := userRepo.GetByID(*userID)
	if err != nil {
		log.Fatalf("Failed to read user back: %v", err)
	}

	log.Printf("User %d (%s) vip=%v", user.UserID, user.Username, user.IsVIP)
}
