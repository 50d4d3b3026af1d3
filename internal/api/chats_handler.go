package api

import (
	"encoding/json"
	"net/http"

	"scoutline/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

type openChatRequest struct {
	User1ID string `json:"user1Id"`
	User2ID string `json:"user2Id"`
}

// OpenChatHandler handles POST /chats. Opening a chat for a pair that
// already has one returns the existing chat.
func OpenChatHandler(chats *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		chat, err := chats.OpenChat(r.Context(), req.User1ID, req.User2ID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, chat)
	}
}

// ListChatsHandler handles GET /chats/user/{user_id}
func ListChatsHandler(chats *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := chats.ListByParticipant(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

type sendMessageRequest struct {
	SenderID string `json:"senderId"`
	Content  string `json:"content"`
}

// SendMessageHandler handles POST /chats/{id}/messages
func SendMessageHandler(chats *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid chat id")
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		msg, err := chats.SendMessage(r.Context(), id, req.SenderID, req.Content)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, msg)
	}
}

// ListMessagesHandler handles GET /chats/{id}/messages
func ListMessagesHandler(chats *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid chat id")
			return
		}

		out, err := chats.ListMessages(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

// DeleteChatHandler handles DELETE /chats/{id}
func DeleteChatHandler(chats *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid chat id")
			return
		}

		if err := chats.DeleteChat(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
