// Command mazetoken issues a bearer token allowed to create mazes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/mazeraster/config"
	"github.com/beka-birhanu/mazeraster/infrastruture/token"
)

func main() {
	var (
		subject string
		ttl     time.Duration
	)

	flag.StringVar(&subject, "subject", "cli", "Subject claim of the token")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	config.Load()
	logger := config.NewLogger("MAZETOKEN", config.Envs.LogLevel, os.Stderr)

	jwt := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	t, err := jwt.IssueMazeToken(subject, ttl)
	if err != nil {
		logger.Errorf("Issuing token: %v", err)
		os.Exit(1)
	}

	logger.WithField("subject", subject).Infof("Token valid for %s", ttl)
	fmt.Println(t)
}
