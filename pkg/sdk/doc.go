// Package collabup embeds the collabup recommendation engine in a Go program.
//
// The client talks to the same document stores as the collabup service
// (Redis, Valkey, Badger or SQLite) and returns the same rankings:
//
//	client, _ := collabup.New(ctx, collabup.WithSQLite("collabup.db"))
//	defer client.Close()
//
//	_ = client.Put(ctx, "studentProjects", "sp1", map[string]any{
//	    "title":  "Machine Learning System",
//	    "domain": "AI",
//	})
//	recs, _ := client.Recommend(ctx, "machine learning bangalore", 5)
//	for _, m := range recs.StudentProjects {
//	    fmt.Println(m.ID, m.Score)
//	}
package collabup
