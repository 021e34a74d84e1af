// Package youtube resolves video references and fetches metadata and caption
// data from YouTube's public endpoints.
//
// No API key is involved. Metadata comes from the oEmbed endpoint; captions
// come from the same watch-page document and timedtext URLs the web player
// uses. Callers that need the plain transcript text should use
// Client.Transcript, which picks the caption track best matching the
// configured language preferences.
package youtube
