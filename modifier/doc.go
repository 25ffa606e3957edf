// Package modifier provides the text transformations a Logger applies
// between producing a message and handing it to a writer.
//
// Modifiers run in order, each receiving the previous output together
// with the level and the call Context. A Logger assembles the chain for
// one writer from its level table, then appends the chain owned by the
// writer itself.
//
// Provided modifiers:
//
//   - Timestamp prefixes "2006-01-02 15:04:05.000 " from the context time
//   - Color wraps the text in "\u001b[fgR,G,B;" / "\u001b[bgR,G,B;" and "\u001b[;"
//   - PropertyExpansion resolves {attributes.key} and {context.key}
//   - JSON renders a structured message and its context as an object
//   - Prefix tags messages with "[name] => "
//
// Modifiers that need message attributes implement AttributeModifier.
package modifier
