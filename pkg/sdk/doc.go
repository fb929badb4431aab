// Package recherche provides an embedded Go client for the recherche
// recipe search engine backed by Redis with the RediSearch module.
//
// The client wires the full search pipeline in-process: ingest derives
// keyword tokens from titles, and queries run spell correction, variant
// expansion and fuzzy ranking before returning scored pages.
//
//	client, _ := recherche.New(ctx, recherche.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	client.Recipes().Upsert(ctx, recherche.Recipe{
//	    ID:       "tarte-tatin",
//	    Title:    "Tarte Tatin",
//	    Category: "Dessert",
//	})
//
//	page, _ := client.Search(ctx, recherche.SearchRequest{Text: "tart"})
//	for _, hit := range page.Hits {
//	    fmt.Println(hit.Title, hit.Score)
//	}
package recherche
