package service

import (
	"context"
	"encoding/json"
	"fmt"
	"linkup_backend/pkg/logger"
	"linkup_backend/pkg/monitoring"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	onlineTTL      = 2 * time.Minute // 在线状态过期时间

	roomChannel = "chat:rooms"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// 客户端与服务端的事件信封
// 事件：joinRoom / enter / message / disconnect
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type JoinRoomData struct {
	RoomName string `json:"roomName"`
}

type EnterData struct {
	RoomName string `json:"roomName"`
	UserName string `json:"userName"`
}

type ChatMessageData struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	RoomName string `json:"roomName"`
	Time     string `json:"time"`
	UserName string `json:"userName"`
}

// roomEnvelope Redis 跨实例转发的载荷
type roomEnvelope struct {
	Room    string          `json:"room"`
	Payload json.RawMessage `json:"payload"`
}

type Client struct {
	Hub      *ChatHub
	Conn     *websocket.Conn
	Send     chan []byte
	UserID   uint
	Username string
	rooms    map[string]bool
	Limiter  *rate.Limiter
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("WebSocket unexpected close", zap.Error(err), zap.Uint("userId", c.UserID))
			}
			break
		}

		// 限流校验 (每秒最多 30 条消息，允许突发 50 条)
		if !c.Limiter.Allow() {
			continue
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			continue
		}

		monitoring.ChatMessageCounter.WithLabelValues(wsMsg.Event, "in").Inc()
		c.Hub.handleEvent(c, &wsMsg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if n := len(c.Send); n > 0 {
				for i := 0; i < n; i++ {
					w.Write(<-c.Send)
				}
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ChatHub 房间制的连接转发器
// 广播是 fire-and-forget：只投给当前在房间里的连接，落库由独立的 HTTP 请求负责
type ChatHub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	Redis      *redis.Client
	ctx        context.Context
}

func NewChatHub(rdb *redis.Client) *ChatHub {
	return &ChatHub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		Redis:      rdb,
		ctx:        context.Background(),
	}
}

func (h *ChatHub) Run() {
	// 跨实例转发：订阅房间频道，把别的实例发布的载荷投给本地房间成员
	if h.Redis != nil {
		pubsub := h.Redis.Subscribe(h.ctx, roomChannel)
		go func() {
			ch := pubsub.Channel()
			for msg := range ch {
				var env roomEnvelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					logger.Log.Error("PubSub unmarshal error", zap.Error(err))
					continue
				}
				h.deliverLocal(env.Room, env.Payload)
			}
		}()
	}

	heartbeatTicker := time.NewTicker(1 * time.Minute)
	defer heartbeatTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.setOnline(client.UserID, true)
			monitoring.ChatOnlineClients.Inc()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				for room := range client.rooms {
					h.leaveRoomLocked(client, room)
				}
				close(client.Send)
				monitoring.ChatOnlineClients.Dec()
			}
			h.mu.Unlock()
			h.setOnline(client.UserID, false)

		case <-heartbeatTicker.C:
			h.refreshOnlineStatus()

		case <-h.done:
			return
		}
	}
}

func (h *ChatHub) handleEvent(c *Client, msg *WSMessage) {
	switch msg.Event {
	case "joinRoom":
		var data JoinRoomData
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.RoomName == "" {
			return
		}
		h.joinRoom(c, data.RoomName)

	case "enter":
		var data EnterData
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.RoomName == "" {
			return
		}
		h.BroadcastToRoom(data.RoomName, "enter", data)

	case "message":
		var data ChatMessageData
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.RoomName == "" {
			return
		}
		h.BroadcastToRoom(data.RoomName, "message", data)
	}
}

func (h *ChatHub) joinRoom(c *Client, room string) {
	h.mu.Lock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][c] = true
	c.rooms[room] = true
	h.mu.Unlock()
}

// leaveRoomLocked 调用方必须持有 h.mu
func (h *ChatHub) leaveRoomLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// BroadcastToRoom 向房间广播一个事件
// 有 Redis 时经频道发布（多实例部署），否则只投本地连接
func (h *ChatHub) BroadcastToRoom(room, event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	payload, err := json.Marshal(WSMessage{Event: event, Data: raw})
	if err != nil {
		return
	}
	monitoring.ChatMessageCounter.WithLabelValues(event, "out").Inc()

	if h.Redis != nil {
		env, _ := json.Marshal(roomEnvelope{Room: room, Payload: payload})
		h.Redis.Publish(h.ctx, roomChannel, env)
		return
	}
	h.deliverLocal(room, payload)
}

func (h *ChatHub) deliverLocal(room string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *ChatHub) setOnline(userID uint, online bool) {
	if h.Redis == nil {
		return
	}
	key := fmt.Sprintf("user:online:%d", userID)
	if online {
		h.Redis.Set(h.ctx, key, "true", onlineTTL)
	} else {
		h.Redis.Del(h.ctx, key)
	}
}

// refreshOnlineStatus 为本实例在线用户批量续期
func (h *ChatHub) refreshOnlineStatus() {
	if h.Redis == nil {
		return
	}
	pipe := h.Redis.Pipeline()
	count := 0
	h.mu.RLock()
	for client := range h.clients {
		pipe.Expire(h.ctx, fmt.Sprintf("user:online:%d", client.UserID), onlineTTL)
		count++
	}
	h.mu.RUnlock()
	if count > 0 {
		pipe.Exec(h.ctx)
		logger.Log.Debug("Refreshed online status", zap.Int("count", count))
	}
}

func (h *ChatHub) IsUserOnline(userID uint) bool {
	h.mu.RLock()
	for client := range h.clients {
		if client.UserID == userID {
			h.mu.RUnlock()
			return true
		}
	}
	h.mu.RUnlock()

	if h.Redis == nil {
		return false
	}
	// 查 Redis (多实例部署)
	val, err := h.Redis.Get(h.ctx, fmt.Sprintf("user:online:%d", userID)).Result()
	return err == nil && val == "true"
}

// Stop 关闭所有连接并清理在线状态
func (h *ChatHub) Stop() {
	logger.Log.Info("ChatHub stopping: clearing online status and closing connections...")
	close(h.done)

	var userIDs []uint
	h.mu.Lock()
	for client := range h.clients {
		userIDs = append(userIDs, client.UserID)
		close(client.Send)
		delete(h.clients, client)
	}
	h.rooms = make(map[string]map[*Client]bool)
	h.mu.Unlock()

	if h.Redis != nil && len(userIDs) > 0 {
		pipe := h.Redis.Pipeline()
		for _, userID := range userIDs {
			pipe.Del(h.ctx, fmt.Sprintf("user:online:%d", userID))
		}
		pipe.Exec(h.ctx)
	}

	monitoring.ChatOnlineClients.Set(0)
	logger.Log.Info("ChatHub stopped", zap.Int("closedConnections", len(userIDs)))
}

func ServeWs(hub *ChatHub, w http.ResponseWriter, r *http.Request, userID uint, username string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.Uint("userId", userID))
		return
	}
	client := &Client{
		Hub:      hub,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		UserID:   userID,
		Username: username,
		rooms:    make(map[string]bool),
		Limiter:  rate.NewLimiter(rate.Limit(30), 50),
	}
	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}
