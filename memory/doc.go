// Package memory provides the long-term memory layer for the companion.
//
// Every completed conversation turn is persisted as one Record: the free-text
// exchange plus an embedding vector computed at write time. Retrieval is by
// embedding similarity only; record order carries no meaning.
//
// Architecture:
//   - Store: vector storage backend (chromem-go for the local SDK)
//   - Embedder: text-to-vector conversion (Gemini API, or mock for tests)
//   - Manager: orchestrates embed-on-write and top-K retrieval
//
// Integration with companion.Companion:
//   - Retrieve runs at the start of every Talk call
//   - Remember runs after every completed turn
//
// Production swaps keep the interfaces and replace the backends (e.g.
// pgvector store, a different embedding API).
package memory
