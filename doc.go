// Package udns provides a Go client for the UltraDNS REST API, covering
// zone and resource-record management plus client-side write batching.
//
// # Quick Start
//
//	client, err := udns.New("user", "password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	records, err := client.Records(context.Background(), "example.com.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Authentication is lazy: the first call performs the login, and an
// expired access token is refreshed and the failed call retried once,
// transparently.
//
// # Configuration
//
// Use functional options to configure the client:
//
//	client, err := udns.New("user", "password",
//	    udns.WithBaseURL("https://test-restapi.ultradns.com"),
//	    udns.WithTimeout(10*time.Second),
//	    udns.WithLogger(logger),
//	)
//
// # Transactions
//
// A transaction queues write operations locally and submits them as one
// atomic batch call:
//
//	client.StartTransaction()
//	client.CreateRecord(ctx, "example.com.", "A", "www", 300, "192.0.2.1")
//	client.DeleteRecord(ctx, "example.com.", "A", "old")
//	if _, err := client.CommitTransaction(ctx); err != nil {
//	    var txErr *udns.TransactionError
//	    if errors.As(err, &txErr) {
//	        // txErr.Messages holds one message per failed operation
//	    }
//	}
//
// Reads are forbidden while a transaction is open.
//
// # Error Handling
//
// Errors are typed and can be checked with errors.Is or the predicate
// helpers:
//
//	err := client.CreatePrimaryZone(ctx, "example.com.")
//	if udns.IsZoneAlreadyExists(err) {
//	    // zone was already there
//	}
//
// # Thread Safety
//
// A Client holds mutable session and transaction state and is NOT safe for
// concurrent use. Use one Client per goroutine, or add external locking.
package udns
