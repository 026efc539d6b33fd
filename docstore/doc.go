// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package docstore is the document-store collaborator: writes and reads of
arbitrary key-value documents addressed by caller-supplied paths, backed
by the sqlite document table.

The app stores profile fields at users/<id> and form submissions under
pollForms/. Callers that don't need the outcome use PutAsync, which
resolves a one-shot result channel after the write lands; nothing in the
calling code blocks on it.
*/
package docstore
