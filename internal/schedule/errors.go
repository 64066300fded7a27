package schedule

import (
	"errors"
	"fmt"

	"agenda-clinica/pkg/models"
)

var (
	// ErrValidacao marca erros de formulário detectados antes de qualquer
	// escrita no banco.
	ErrValidacao = errors.New("dados inválidos")

	// ErrNaoEncontrado indica que o registro pedido não existe (ou já foi
	// removido por outra sessão).
	ErrNaoEncontrado = errors.New("registro não encontrado")
)

// ConflitoError é devolvido quando o horário candidato sobrepõe um
// compromisso pessoal. A mensagem nomeia o compromisso e sua faixa de
// horário para o usuário corrigir o formulário.
type ConflitoError struct {
	Compromisso models.CompromissoPessoal
}

func (e *ConflitoError) Error() string {
	c := e.Compromisso
	return fmt.Sprintf("horário em conflito com o compromisso %q (%s–%s)",
		c.Nome, c.HoraInicio, c.HoraFim)
}

func erroValidacao(formato string, args ...any) error {
	return fmt.Errorf("%w: "+formato, append([]any{ErrValidacao}, args...)...)
}
