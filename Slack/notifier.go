package Slack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"Crane/Models"
)

// webhookMessage is the payload Slack incoming webhooks accept.
type webhookMessage struct {
	Text string `json:"text"`
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// NotifySafetyIncident posts high and critical incidents to the site channel.
// Alerting is best effort: a missing webhook URL or a failed post is logged
// and never fails the incident write.
func NotifySafetyIncident(incident Models.SafetyIncident, projectName, reporterName string) {
	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}
	if incident.Severity != Models.SeverityHigh && incident.Severity != Models.SeverityCritical {
		return
	}

	text := fmt.Sprintf(
		"*%s safety incident* (%s) at %s on %s\nProject: %s\nReported by: %s\n%s",
		incident.Severity, incident.IncidentType, incident.Location,
		incident.IncidentDate, projectName, reporterName, incident.Description,
	)

	body, err := json.Marshal(webhookMessage{Text: text})
	if err != nil {
		log.Println("slack payload marshal failed:", err)
		return
	}

	resp, err := httpClient.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("slack notification failed:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("slack notification returned status %d\n", resp.StatusCode)
	}
}
