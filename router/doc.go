// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the API route table.

NewRouter builds the http.ServeMux, constructs the shared in-memory
stores (events, poll engine, form engine, chats) and the document store,
and wires every route through the logging middleware:

	mux := router.NewRouter(db, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))

Routes use Go 1.22+ method-and-pattern matching, e.g.

	mux.HandleFunc("DELETE /form/questions/{id}", ...)
*/
package router
