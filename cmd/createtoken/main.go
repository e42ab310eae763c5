package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/snnnxs25024-ux/absensi-backend/security"
)

func main() {
	username := flag.String("username", "operator", "operator username")
	site := flag.String("site", "sunter1", "site schema the operator works at")
	expires := flag.Int64("expires", 12*3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("ABSENSI_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("ABSENSI_SIGNING_SECRET is not set")
	}

	token, err := security.CreateOperatorToken(&security.Operator{
		ID:       1,
		Username: *username,
		Site:     *site,
	}, secret, *expires)
	if err != nil {
		log.Fatalf("failed to create token: %v", err)
	}

	fmt.Println(token)
}
