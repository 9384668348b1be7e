package rag

import (
	"strings"

	"docchat/internal/chunker"
)

// Refusal is the answer when nothing in the document matches the question.
const Refusal = "I don't have enough information in the provided data to answer that."

const systemPrompt = `You are a helpful assistant that answers questions strictly based on the provided document content. 

CRITICAL RULES:
1. Answer ONLY using information from the context provided below
2. If the answer is not in the context, you MUST respond with: "` + Refusal + `"
3. Do NOT use any external knowledge
4. Do NOT make assumptions or inferences beyond what is explicitly stated
5. Be concise and accurate
6. If you're unsure, say you don't have enough information`

type Prompt struct {
	System string
	User   string
}

// BuildPrompt embeds the chunk texts, in the given order, as context for query.
func BuildPrompt(query string, chunks []chunker.Chunk) Prompt {
	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}

	var buf strings.Builder
	buf.WriteString("Context from the document:\n")
	buf.WriteString(strings.Join(texts, "\n\n"))
	buf.WriteString("\n\nQuestion: ")
	buf.WriteString(query)
	buf.WriteString("\n\nAnswer based ONLY on the context above. If the information is not in the context, respond with: \"")
	buf.WriteString(Refusal)
	buf.WriteString("\" ")

	return Prompt{System: systemPrompt, User: buf.String()}
}
