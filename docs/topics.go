// Package docs embeds the sbk user documentation and serves it by topic.
//
// Every *.md file in this directory is one topic, addressed by its base name.
// readme.md is the entry page listing the topics and is not a topic itself.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// GetTopic returns the markdown content of a single topic.
func GetTopic(topic string) (string, error) {
	return GetTopics(topic)
}

// GetTopics concatenates the content of the given topics, in order.
// A "*" entry expands in place to every available topic.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			expanded, err := GetTopics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			continue
		}
		content, err := pages.ReadFile(topic + ".md")
		if err != nil {
			return "", fmt.Errorf("topic %q not found: %w", topic, err)
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the available topic names, sorted, readme excluded.
func GetAllTopics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
