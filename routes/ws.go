package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"

	"velora/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected back-office clients with mutex for thread safety
var wsClients = make(map[*websocket.Conn]bool)
var wsBroadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var wsMutex = &sync.Mutex{}
var wsOnce sync.Once

// orderFeedHandler mounts the /ws endpoint. Connected clients receive a JSON
// notice whenever checkout creates an order.
func orderFeedHandler() fiber.Handler {
	wsOnce.Do(func() {
		go func() {
			for message := range wsBroadcast {
				wsMutex.Lock()
				for client := range wsClients {
					if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
						log.Printf("WebSocket write error: %v", err)
						client.Close()
						delete(wsClients, client)
					}
				}
				wsMutex.Unlock()
			}
		}()
	})

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		wsMutex.Lock()
		wsClients[conn] = true
		wsMutex.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				wsMutex.Lock()
				delete(wsClients, conn)
				wsMutex.Unlock()
				break
			}
		}
	})
}

func broadcastOrderCreated(order *models.Order) {
	msg, err := json.Marshal(fiber.Map{
		"event":    "order_created",
		"order_id": order.ID,
		"total":    order.Total,
		"status":   order.Status,
	})
	if err != nil {
		return
	}
	select {
	case wsBroadcast <- msg:
	default: // never block checkout on a slow feed
	}
}
