// Package itsmkb provides an embeddable Go client for the ITSM knowledge base:
// keyword classification of service-management records, item storage and
// search, all running in-process on top of memory, SQLite, Redis or Valkey.
//
//	client, _ := itsmkb.New(ctx, itsmkb.WithSQLite("data/itsmkb.db"), itsmkb.WithAutoClassify())
//	defer client.Close()
//
//	c := client.Classifier().Classify("Web server down", "error alert raised, restart pending")
//	item, _ := client.Items().Save(ctx, itsmkb.Item{Title: "Web server down", Tags: []string{"apache"}})
//
//	res := client.Search().Query(ctx, itsmkb.SearchQuery{Text: "apache", Limit: 10})
//	res = client.Search().Advanced(ctx, "tag:apache AND type:Incident severity:high")
//	similar := client.Search().Similar(ctx, item.ID, 5)
//
// Search operations never return errors: a failed search yields an empty
// result whose Error field carries the message.
package itsmkb
