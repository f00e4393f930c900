// Command hashkey prints the bcrypt hash of an access key for use in
// VIEWER_KEY_HASH / MODERATOR_KEY_HASH / ADMIN_KEY_HASH.
package main

import (
	"fmt"
	"log"
	"os"

	"askbox/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <access-key>", os.Args[0])
	}

	hash, err := utils.HashAccessKey(os.Args[1])
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}
	fmt.Println(hash)
}
