// Package reuse decides which views survive a navigation.
//
// A navigation pipeline consults it in a fixed order. ShouldReuseRoute first
// tells the host whether the current view can simply be updated in place.
// If not, ShouldDetach says whether the outgoing view is worth keeping, and
// Store records its detached handle under the identity from DeriveKey. For the
// incoming snapshot, ShouldAttach and Retrieve hand a kept view back.
//
// Identities are the URL path segments joined by "/", so every distinct URL
// of a parameterised route gets its own slot. Nothing is ever evicted.
package reuse
