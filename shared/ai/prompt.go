package ai

import (
	"fmt"
	"strconv"
	"strings"

	"tubelens/internal/models"
	"tubelens/shared/youtube"
)

const (
	maxDescriptionChars = 1000
	maxTranscriptChars  = 6000
	maxPromptTags       = 10
)

// analysisSections is the fixed instruction block requesting the seven
// analysis sections. The duplicate-heading directive exists because models
// tend to restate the section name in plain text right before the heading.
const analysisSections = `Structure your analysis using EXACTLY these seven sections, each introduced by its emoji and bold label:

🎯 **Video Overview**
📝 **Main Summary**
🔑 **Key Points**
💡 **Insights & Takeaways**
👥 **Target Audience**
⭐ **Quality Assessment**
🎬 **Conclusion**

Do NOT write a section title in plain text before its emoji heading.`

// newerFamilySuffix is appended for newer-family models, which double up
// headings more aggressively.
const newerFamilySuffix = `Formatting requirement: start every section with the emoji and bold label exactly as listed above, on its own line, with nothing before it. Use standard markdown emphasis only and never repeat a section heading.`

// defaultFamilySuffix is the suffix for the default ("1.5") family.
const defaultFamilySuffix = `Important: use each emoji heading exactly once and do not restate the section name anywhere else in the text.`

// BuildPrompt deterministically merges metadata, transcript and optional
// user instructions into a single natural-language prompt for the model.
func BuildPrompt(meta *models.VideoMetadata, transcript, additional string, newerFamily bool) string {
	var b strings.Builder

	b.WriteString("Analyze this YouTube video:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", meta.Title)
	fmt.Fprintf(&b, "Channel: %s\n", meta.ChannelTitle)
	fmt.Fprintf(&b, "Duration: %s\n", youtube.FormatDuration(meta.Duration))
	fmt.Fprintf(&b, "Views: %s\n", formatCount(meta.ViewCount))
	fmt.Fprintf(&b, "Published: %s\n", formatPublished(meta))
	fmt.Fprintf(&b, "Likes: %s\n", formatCount(meta.LikeCount))

	b.WriteString("\nDescription:\n")
	b.WriteString(describeOrDefault(meta.Description))
	b.WriteString("\n")

	if len(meta.Tags) > 0 {
		tags := meta.Tags
		if len(tags) > maxPromptTags {
			tags = tags[:maxPromptTags]
		}
		fmt.Fprintf(&b, "\nTags: %s\n", strings.Join(tags, ", "))
	}

	b.WriteString("\nTranscript:\n")
	if transcript != "" {
		if len(transcript) > maxTranscriptChars {
			b.WriteString(transcript[:maxTranscriptChars])
			b.WriteString(" [transcript continues]")
		} else {
			b.WriteString(transcript)
		}
	} else {
		b.WriteString("No transcript is available for this video.")
	}
	b.WriteString("\n\n")

	b.WriteString(analysisSections)

	if strings.TrimSpace(additional) != "" {
		b.WriteString("\n\nSpecial instructions from the user:\n")
		b.WriteString(strings.TrimSpace(additional))
	}

	b.WriteString("\n\n")
	if newerFamily {
		b.WriteString(newerFamilySuffix)
	} else {
		b.WriteString(defaultFamilySuffix)
	}

	return b.String()
}

func describeOrDefault(description string) string {
	if description == "" {
		return "No description available"
	}
	if len(description) > maxDescriptionChars {
		return description[:maxDescriptionChars] + "... [truncated]"
	}
	return description
}

func formatPublished(meta *models.VideoMetadata) string {
	if meta.PublishedAt.IsZero() {
		return "Unknown"
	}
	return meta.PublishedAt.Format("January 2, 2006")
}

// formatCount renders a count with thousands separators, or "Unknown" when
// the source API omitted it.
func formatCount(n *int64) string {
	if n == nil {
		return "Unknown"
	}

	s := strconv.FormatInt(*n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
