// Package c1 implements voyage.ChatProvider on top of the Thesys C1
// generative-UI endpoint.
//
// C1 speaks the OpenAI chat-completions wire protocol, so the client wraps
// the official OpenAI SDK pointed at the C1 base URL. What makes C1 different
// is request metadata: custom component schemas travel in a metadata field on
// the request body, and the model answers with component payloads the
// rendering engine turns into widgets.
//
//	client := c1.New(apiKey,
//	    c1.WithMetadata(widget.MustMetadataHeader()),
//	)
//	events, err := client.ChatStream(ctx, messages, voyage.WithTools(registry.Tools()...))
package c1
