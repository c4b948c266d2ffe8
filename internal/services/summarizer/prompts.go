package summarizer

import (
	"fmt"
	"strings"

	"github.com/vidigest/digest-api/internal/models"
)

const defaultSystemPrompt = "You are an assistant that writes clear, accurate digests of video transcripts. " +
	"Base your answer only on the transcript and metadata provided. Do not invent facts."

var digestInstructions = map[models.DigestType]string{
	models.DigestTypeSummary: "Write a concise summary of the video in one or two paragraphs. " +
		"Cover the main topic, the key points made, and any conclusion.",
	models.DigestTypeDetailed: "Write a thorough, section-by-section breakdown of the video. " +
		"Follow the chapter structure when chapters are given, and include important details, " +
		"arguments, and examples from the transcript.",
	models.DigestTypeHighlights: "List the most important moments of the video as bullet points. " +
		"Prefix each bullet with the chapter timestamp when chapters are given.",
	models.DigestTypeConcise: "Summarize the video in at most three sentences. " +
		"State only what the video is about and its single most important takeaway.",
}

// systemPrompt returns the system message for a digest type
func systemPrompt(digestType models.DigestType) string {
	instruction, ok := digestInstructions[digestType]
	if !ok {
		instruction = digestInstructions[models.DigestTypeSummary]
	}
	return defaultSystemPrompt + "\n\n" + instruction
}

// userPrompt assembles the metadata block, chapter list, and (possibly
// truncated) transcript into the user message
func userPrompt(req Request, maxTranscriptChars int) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Title: %s\n", req.VideoTitle)
	if req.ChannelTitle != "" {
		fmt.Fprintf(&builder, "Channel: %s\n", req.ChannelTitle)
	}
	if req.Duration > 0 {
		fmt.Fprintf(&builder, "Duration: %d seconds\n", req.Duration)
	}

	builder.WriteString("Chapters:\n")
	if len(req.Chapters) == 0 {
		builder.WriteString("None\n")
	} else {
		for _, chapter := range req.Chapters {
			fmt.Fprintf(&builder, "%s: %s\n", chapter.Timestamp, chapter.Title)
		}
	}

	builder.WriteString("\nTranscript:\n")
	builder.WriteString(truncateTranscript(req.Transcript, maxTranscriptChars))

	return builder.String()
}

// truncateTranscript caps the transcript to keep prompts inside the model
// context window
func truncateTranscript(transcript string, maxChars int) string {
	if maxChars <= 0 || len(transcript) <= maxChars {
		return transcript
	}
	return transcript[:maxChars] + "\n[transcript truncated]"
}
