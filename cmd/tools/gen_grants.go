// gen_grants mints demo entitlement grants straight into the store,
// useful for seeding a fresh environment without the HTTP surface.
package main

import (
	"auction-lab/domain"
	"auction-lab/repositories"
	"auction-lab/services"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/jonboulle/clockwork"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	months := flag.Int("months", 1, "Validity in 30-day months")
	count := flag.Int("count", 5, "Number of key grants to mint")
	account := flag.String("account", "", "Mint one account-bound grant instead of keys")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	svc := services.NewEntitlementService(
		repositories.NewGrantRepository(db, slog.Default()),
		clockwork.NewRealClock(),
		slog.Default(),
	)

	req := services.CreateRequest{Months: *months, Count: *count, Kind: domain.KindKey}
	if *account != "" {
		req.Kind = domain.KindAccount
		req.Account = *account
	}

	grants, err := svc.Create(req)
	if err != nil {
		log.Fatal(err)
	}
	for _, grant := range grants {
		fmt.Printf("%s\texpires %s\n", grant.ID, grant.ExpiresAt.Format("2006-01-02"))
	}
}
