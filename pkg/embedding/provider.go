package embedding

// EmbeddingProvider generates a vector for a piece of text. taskType hints
// the intended use ("RETRIEVAL_DOCUMENT" when indexing, "RETRIEVAL_QUERY"
// when searching); providers without such a notion ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
