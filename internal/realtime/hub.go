// Package realtime implementa o canal de notificação de mudanças: clientes
// conectam por websocket e recebem um aviso sempre que uma coleção muda.
// O aviso não carrega diff nenhum — só o nome da coleção — e o cliente
// refaz a consulta da visão atual. Invalidação grossa de propósito: barata
// e suficiente para o volume de dados de uma clínica.
package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Evento é a mensagem enviada aos clientes conectados.
type Evento struct {
	Tipo     string `json:"type"`
	Colecao  string `json:"collection,omitempty"`
	Mensagem string `json:"mensagem,omitempty"`
	Quando   string `json:"quando"`
}

type cliente struct {
	conn   *websocket.Conn
	sendCh chan []byte
}

// Hub mantém os clientes conectados e distribui eventos para todos.
type Hub struct {
	mu       sync.RWMutex
	clientes map[*cliente]bool
}

func NewHub() *Hub {
	return &Hub{clientes: make(map[*cliente]bool)}
}

// HandleWebSocket promove a conexão e mantém o cliente registrado até a
// desconexão. Mensagens recebidas do cliente são descartadas: o canal é
// só de ida.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Erro no upgrade do websocket: %v", err)
		return
	}

	c := &cliente{conn: conn, sendCh: make(chan []byte, 64)}

	h.mu.Lock()
	h.clientes[c] = true
	total := len(h.clientes)
	h.mu.Unlock()
	log.Printf("🔌 Cliente conectado ao canal de mudanças (%d ativos)", total)

	go h.escreverParaCliente(c)
	h.lerDoCliente(c)
}

// Notify avisa todos os clientes que a coleção mudou.
func (h *Hub) Notify(colecao string) {
	h.broadcast(Evento{Tipo: "change", Colecao: colecao})
}

// Lembrete envia um aviso de tarefa/consulta iminente pelo mesmo canal.
func (h *Hub) Lembrete(mensagem string) {
	h.broadcast(Evento{Tipo: "lembrete", Mensagem: mensagem})
}

// Conectados devolve o número de clientes ativos (exposto no /api/stats).
func (h *Hub) Conectados() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clientes)
}

func (h *Hub) broadcast(ev Evento) {
	ev.Quando = time.Now().UTC().Format(time.RFC3339)
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("❌ Erro ao serializar evento: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clientes {
		select {
		case c.sendCh <- payload:
		default:
			// Cliente lento: descarta o aviso. Ele se recupera na
			// próxima mudança ou reconexão.
		}
	}
}

func (h *Hub) escreverParaCliente(c *cliente) {
	for payload := range c.sendCh {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (h *Hub) lerDoCliente(c *cliente) {
	defer h.remover(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remover(c *cliente) {
	h.mu.Lock()
	if h.clientes[c] {
		delete(h.clientes, c)
		close(c.sendCh)
	}
	total := len(h.clientes)
	h.mu.Unlock()

	c.conn.Close()
	log.Printf("🔌 Cliente desconectado (%d ativos)", total)
}
