package gemini

// TranscriptionInstruction is the instruction sent alongside an uploaded audio
// file when requesting a transcript. The wording is part of the contract with
// the model: it must yield an exact transcript with no extra commentary, so
// keep changes centralized here.
const TranscriptionInstruction = "Transcribe this audio exactly as spoken. " +
	"Return ONLY the transcription text, nothing else."
