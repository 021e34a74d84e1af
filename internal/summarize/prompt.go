package summarize

import (
	"fmt"

	"github.com/Madmanden/yt-summarizer/internal/youtube"
)

const summaryPromptTemplate = `You are a professional content editor who creates clear, cohesive summaries of YouTube videos.

VIDEO TITLE: %s
VIDEO AUTHOR: %s

Below is the transcript of the video. Create a well-structured summary that:

1. Begins with a brief overview of the video's main purpose and core message (1-2 paragraphs)

2. Organizes information into logical, thematic sections with clear headings, even if the original video jumped between topics
   - Group related concepts and points together under common themes. Use natural language, no bullet points
   - Ensure smooth transitions between sections
   - Present information in a logical progression

3. Captures all key information, including:
   - Main arguments and their supporting evidence
   - Important facts, figures, and examples
   - Noteworthy quotes or insights

4. Concludes with a concise paragraph summarizing the video's main takeaways

Format guidelines:
- Use Markdown formatting
- Create a logical hierarchy with headings (## for main sections, ### for subsections)
- Bold key terms or important statements
- Include a "Key Points" section at the end that highlights 3-5 essential takeaways

The summary should read as a cohesive whole, as if it were a well-structured article on the topic, not just a collection of notes.

TRANSCRIPT:
%s`

const productNamesPromptTemplate = `You are a product name accuracy reviewer. Review the following summary of a YouTube video and fix any product names that seem incorrect based on the context.

VIDEO TITLE: %s
VIDEO AUTHOR: %s

Focus ONLY on correcting product names, brand names, and technical terms that appear to be incorrect or misspelled based on the context.
Do not make any other changes to the summary's content, structure, or style.

Return the entire summary with any product name corrections made.

SUMMARY:
%s`

// summaryPrompt renders the editorial prompt for the first pass.
func summaryPrompt(info youtube.VideoInfo, transcript string) string {
	return fmt.Sprintf(summaryPromptTemplate, info.Title, info.Author, transcript)
}

// productNamesPrompt renders the review prompt for the optional second pass.
func productNamesPrompt(info youtube.VideoInfo, summary string) string {
	return fmt.Sprintf(productNamesPromptTemplate, info.Title, info.Author, summary)
}
