// Command bankwright serves the bundled demo bank so the registration flow
// can be exercised by hand or pointed at by a suite via TARGET_BASE_URL.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/apexqa/bankwright/bankdemo"
	"github.com/apexqa/bankwright/framework/config"
)

func main() {
	cfg := config.Load() // reads .env when present

	addr := ":" + cfg.App.Port
	fmt.Printf("%s demo bank running on http://localhost%s  [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)
	fmt.Println("register at /register — API under /api/customers/{username}")

	if err := http.ListenAndServe(addr, bankdemo.NewServer()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
