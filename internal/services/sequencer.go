package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/planner"
)

// SequencerService asks the estimation service to order a topic's pending
// subtopics pedagogically and attach a duration and difficulty to each.
//
// The adapter is deliberately forgiving: network failures, malformed
// responses, and empty results all collapse to an empty slice. An empty
// sequence is not self-distinguishing from "nothing to study", so the caller
// decides how to report it. Estimates are never fabricated here; entries the
// model returned without a usable duration are dropped.
type SequencerService interface {
	FetchSequence(ctx context.Context, courseTitle, topicTitle string, pendingLabels []string) []planner.Item
}

type sequencerService struct {
	log      *logger.Logger
	aiClient AIClient
}

func NewSequencerService(log *logger.Logger, aiClient AIClient) SequencerService {
	return &sequencerService{
		log:      log.With("service", "SequencerService"),
		aiClient: aiClient,
	}
}

func (ss *sequencerService) FetchSequence(ctx context.Context, courseTitle, topicTitle string, pendingLabels []string) []planner.Item {
	if len(pendingLabels) == 0 {
		return []planner.Item{}
	}
	if ss.aiClient == nil {
		ss.log.Warn("Sequence estimation unavailable: no AI client configured")
		return []planner.Item{}
	}

	labelsJSON, err := json.Marshal(pendingLabels)
	if err != nil {
		ss.log.Warn("Failed to encode pending labels", "error", err)
		return []planner.Item{}
	}

	prompt := fmt.Sprintf(
		"Act as an expert study planner. For the main topic '%s' of the course '%s', "+
			"analyze this list of subtopics: %s. "+
			"First, order the list into a logical learning sequence, from the most basic and fundamental to the most advanced. "+
			"Then, for each subtopic in the correct order, estimate the study time needed in minutes (multiples of 15, such as 30, 45, 60) "+
			"and classify its difficulty (Easy, Medium, Hard). "+
			"Return EXCLUSIVELY a JSON object with a key 'sequence' holding the ALREADY ORDERED list of objects. "+
			"Each object must have the keys: 'label' (string), 'estimated_minutes' (int), and 'difficulty' (string).",
		topicTitle, courseTitle, string(labelsJSON),
	)

	completion, err := ss.aiClient.Chat(ctx, []AIMessage{
		{Role: "system", Content: "You are an expert and helpful study-planning assistant."},
		{Role: "user", Content: prompt},
	}, &AIOptions{JSONMode: true})
	if err != nil {
		ss.log.Warn("Sequence estimation call failed", "topic", topicTitle, "error", err)
		return []planner.Item{}
	}

	items := normalizeSequence([]byte(completion.Content))
	if len(items) == 0 {
		ss.log.Warn("Sequence estimation returned no usable items", "topic", topicTitle)
	}
	return items
}

type sequencePayload struct {
	Sequence []struct {
		Label            string          `json:"label"`
		EstimatedMinutes json.RawMessage `json:"estimated_minutes"`
		Difficulty       string          `json:"difficulty"`
	} `json:"sequence"`
}

// normalizeSequence converts the model's raw JSON into allocation items.
// Entries without a label or a positive integer duration are skipped; a
// malformed document yields an empty slice.
func normalizeSequence(raw []byte) []planner.Item {
	var payload sequencePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return []planner.Item{}
	}
	items := make([]planner.Item, 0, len(payload.Sequence))
	for _, entry := range payload.Sequence {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			continue
		}
		minutes, ok := parseMinutes(entry.EstimatedMinutes)
		if !ok || minutes <= 0 {
			continue
		}
		items = append(items, planner.Item{
			Label:            label,
			EstimatedMinutes: minutes,
			Difficulty:       strings.TrimSpace(entry.Difficulty),
		})
	}
	return items
}

// parseMinutes accepts the duration as a JSON number or a numeric string;
// models are not perfectly consistent about which they emit.
func parseMinutes(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt, true
	}
	var asFloat float64
	if err := json.Unmarshal(raw, &asFloat); err == nil {
		return int(asFloat), true
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		asString = strings.TrimSpace(asString)
		var parsed int
		if _, err := fmt.Sscanf(asString, "%d", &parsed); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
