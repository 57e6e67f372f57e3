package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Event is one entry of a user's public activity feed. Payload shape depends
// on Type, so it is kept raw and queried on demand.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Describe renders the one-line timeline text for the event.
func (e Event) Describe() string {
	repo := e.Repo.Name
	payload := gjson.ParseBytes(e.Payload)

	switch e.Type {
	case "PushEvent":
		n := int(payload.Get("commits.#").Int())
		if n == 1 {
			return fmt.Sprintf("Pushed 1 commit to %s", repo)
		}
		return fmt.Sprintf("Pushed %d commits to %s", n, repo)
	case "CreateEvent":
		ref := payload.Get("ref").String()
		if ref == "" {
			return fmt.Sprintf("Created %s in %s", payload.Get("ref_type").String(), repo)
		}
		return fmt.Sprintf("Created %s %s in %s", payload.Get("ref_type").String(), ref, repo)
	case "WatchEvent":
		return fmt.Sprintf("Starred %s", repo)
	case "ForkEvent":
		return fmt.Sprintf("Forked %s", repo)
	case "DeleteEvent":
		return fmt.Sprintf("Deleted %s in %s", payload.Get("ref_type").String(), repo)
	case "PublicEvent":
		return fmt.Sprintf("Made %s public", repo)
	case "PullRequestEvent":
		return fmt.Sprintf("%s pull request in %s", capitalize(payload.Get("action").String()), repo)
	case "IssuesEvent":
		return fmt.Sprintf("%s an issue in %s", payload.Get("action").String(), repo)
	default:
		return fmt.Sprintf("%s in %s", strings.Replace(e.Type, "Event", "", 1), repo)
	}
}

// CommitMessages returns up to limit commit messages of a push event.
func (e Event) CommitMessages(limit int) []string {
	if e.Type != "PushEvent" {
		return nil
	}
	var out []string
	gjson.GetBytes(e.Payload, "commits.#.message").ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.String())
		return len(out) < limit
	})
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
