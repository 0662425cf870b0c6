package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/utils"
)

func mountForum(r chi.Router, d RouterDeps) {
	r.Post("/forum-post", func(w http.ResponseWriter, r *http.Request) {
		var in forum.CreatePostInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		id, err := d.ForumSvc.CreatePost(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapForumError)
			return
		}
		WriteJSON(w, 201, Message{Message: "Post created", ID: id})
	})

	r.Get("/forum-posts", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.ForumSvc.ListPosts(r.Context(), utils.ParsePage(r.URL.Query().Get("page")))
		if err != nil {
			respondError(w, r, d.Log, err, mapForumError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Post("/forum-vote", func(w http.ResponseWriter, r *http.Request) {
		var in forum.VoteInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		if err := d.ForumSvc.Vote(r.Context(), in); err != nil {
			respondError(w, r, d.Log, err, mapForumError)
			return
		}
		WriteJSON(w, 200, Message{Message: "Vote recorded"})
	})

	r.Get("/home-forum-posts", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.ForumSvc.HomeFeed(r.Context())
		if err != nil {
			respondError(w, r, d.Log, err, mapForumError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/forum-post/{id}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.ForumSvc.GetPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, d.Log, err, mapForumError)
			return
		}
		WriteJSON(w, 200, out)
	})
}
