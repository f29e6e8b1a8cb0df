// Command seed loads a small demo data set into a running taskman server
// through its HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"

	"taskman/internal/handler"
	"taskman/internal/model"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "base URL of the running server")
	flag.Parse()

	log.Println("Starting seed script...")

	users := []handler.CreateUserRequest{
		{Name: "Ann Wright", Email: "ann@example.com", Role: "admin"},
		{Name: "Ben Okafor", Email: "ben@example.com"},
		{Name: "Carla Diaz", Email: "carla@example.com"},
	}

	userIDs := make([]int64, 0, len(users))
	for _, u := range users {
		var created model.User
		if err := post(*baseURL+"/api/users", u, &created); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		log.Printf("Created user %d (%s)", created.ID, created.Email)
		userIDs = append(userIDs, created.ID)
	}

	tasks := []handler.CreateTaskRequest{
		{Title: "Write onboarding guide", Description: "First draft for review", UserID: userIDs[0], Priority: model.PriorityHigh},
		{Title: "Triage open bugs", UserID: userIDs[1], Status: model.StatusInProgress},
		{Title: "Prepare sprint demo", UserID: userIDs[1]},
		{Title: "Archive stale branches", UserID: userIDs[2], Priority: model.PriorityLow},
	}

	for _, t := range tasks {
		var created model.Task
		if err := post(*baseURL+"/api/tasks", t, &created); err != nil {
			log.Fatalf("seed task %q: %v", t.Title, err)
		}
		log.Printf("Created task %d (%s)", created.ID, created.Title)
	}

	log.Printf("Seed completed: %d users, %d tasks", len(users), len(tasks))
}

// post sends payload as JSON and decodes the envelope's data field into out.
func post(url string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}
