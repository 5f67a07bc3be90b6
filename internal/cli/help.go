package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/10Draken01/Docker-Front/internal/ui"
)

// CommandHelp represents the structure of help information for a specific command.
type CommandHelp struct {
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Examples  []string
}

func (c *CLI) handleHelp(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		c.showGeneralHelp()
		return nil
	case 1:
		return c.showOperationHelp(strings.ToLower(args[0]))
	default:
		return fmt.Errorf("uso: help [comando]")
	}
}

func (c *CLI) showGeneralHelp() {
	c.ui.Println("Comandos disponibles:")
	rows := make([][]string, 0, len(commandHelps))
	for _, cmd := range commandHelps {
		rows = append(rows, []string{"  " + cmd.Operation, cmd.ShortDesc})
	}
	c.ui.PrintTable(rows, ui.ColorLightBlue)
	c.ui.Info("Usa 'help <comando>' para ver los detalles de un comando.")
}

func (c *CLI) showOperationHelp(operation string) error {
	for _, cmd := range commandHelps {
		if cmd.Operation != operation {
			continue
		}
		c.ui.PrintMultiColoredLine("{{h}}Comando: {{v}}"+cmd.Operation, helpColors)
		c.ui.PrintMultiColoredLine("{{h}}Descripción: {{v}}"+cmd.LongDesc, helpColors)
		c.ui.PrintMultiColoredLine("{{h}}Sintaxis: {{v}}"+cmd.Syntax, helpColors)
		if len(cmd.Arguments) > 0 {
			c.ui.Println("Argumentos:")
			for _, arg := range cmd.Arguments {
				c.ui.Println("  " + arg)
			}
		}
		if len(cmd.Examples) > 0 {
			c.ui.Println("Ejemplos:")
			for _, ex := range cmd.Examples {
				c.ui.Println("  " + ex)
			}
		}
		return nil
	}
	return fmt.Errorf("no hay ayuda para %s", operation)
}

var helpColors = map[string]ui.Color{
	"{{h}}": ui.ColorGray,
	"{{v}}": ui.ColorWhite,
}

// commandHelps lists every command in the order help shows them.
var commandHelps = []CommandHelp{
	{
		Operation: "list",
		ShortDesc: "Mostrar los aventureros del reino",
		LongDesc:  "Muestra el registro en memoria con sus decoraciones por clase, elemento y nivel.",
		Syntax:    "list",
		Examples:  []string{"list"},
	},
	{
		Operation: "show",
		ShortDesc: "Ver la ficha de un aventurero",
		LongDesc:  "Consulta al servidor la versión más reciente de un aventurero y muestra todos sus campos.",
		Syntax:    "show <n|id>",
		Arguments: []string{"n|id: posición en la lista (desde 1) o identificador"},
		Examples:  []string{"show 2", "show 3f2a9c1e-..."},
	},
	{
		Operation: "add",
		ShortDesc: "Invocar un nuevo aventurero",
		LongDesc:  "Rellena el formulario de creación y lo envía. Sin argumentos pregunta cada campo; Enter conserva el valor actual.",
		Syntax:    "add [campo=valor]...",
		Arguments: []string{
			"username: nombre, al menos 3 caracteres",
			"class: Mago, Guerrero, Arquero, Paladín, Druida, Alquimista, Bardo, Nigromante, Clérigo, Ladrón",
			"level: 1 a 100",
			"element: Fuego, Agua, Tierra, Aire, Luz, Oscuridad, Naturaleza, Arcano, Tiempo, Caos",
			"avatar: 0 a 3",
		},
		Examples: []string{"add", "add username=Lyra class=Mago level=5 element=Fuego", `add username="Sir Borin" class=Paladín`},
	},
	{
		Operation: "edit",
		ShortDesc: "Editar un aventurero",
		LongDesc:  "Carga el aventurero en el formulario de edición. Un nuevo 'edit' reemplaza al anterior.",
		Syntax:    "edit <n|id>",
		Arguments: []string{"n|id: posición en la lista (desde 1) o identificador"},
		Examples:  []string{"edit 1"},
	},
	{
		Operation: "save",
		ShortDesc: "Guardar la edición en curso",
		LongDesc:  "Aplica los cambios al aventurero en edición y los envía al servidor. Sin argumentos pregunta cada campo.",
		Syntax:    "save [campo=valor]...",
		Examples:  []string{"save", "save level=42"},
	},
	{
		Operation: "form",
		ShortDesc: "Mostrar el formulario actual",
		LongDesc:  "Muestra el borrador del formulario de creación o de edición con sus errores.",
		Syntax:    "form",
		Examples:  []string{"form"},
	},
	{
		Operation: "cancel",
		ShortDesc: "Cancelar la edición",
		LongDesc:  "Descarta la edición en curso y vuelve al formulario de creación.",
		Syntax:    "cancel",
		Examples:  []string{"cancel"},
	},
	{
		Operation: "delete",
		ShortDesc: "Eliminar un aventurero",
		LongDesc:  "Pide confirmación y elimina el aventurero del registro.",
		Syntax:    "delete <n|id>",
		Arguments: []string{"n|id: posición en la lista (desde 1) o identificador"},
		Examples:  []string{"delete 2"},
	},
	{
		Operation: "reload",
		ShortDesc: "Recargar desde el servidor",
		LongDesc:  "Vuelve a pedir la lista completa al servidor y reemplaza la copia local.",
		Syntax:    "reload",
		Examples:  []string{"reload"},
	},
	{
		Operation: "export",
		ShortDesc: "Exportar el registro a un archivo",
		LongDesc:  "Guarda la lista en memoria como JSON o XML. El formato se deduce de la extensión si no se indica.",
		Syntax:    "export <archivo> [json|xml]",
		Examples:  []string{"export gremio.json", "export gremio.xml", "export copia.txt xml"},
	},
	{
		Operation: "status",
		ShortDesc: "Ver el estado de la sesión",
		LongDesc:  "Muestra el número de aventureros, el modo del formulario y el mensaje vigente.",
		Syntax:    "status",
		Examples:  []string{"status"},
	},
	{
		Operation: "guide",
		ShortDesc: "Guía del Gremio",
		LongDesc:  "Muestra las clases, los elementos y los marcos especiales por nivel.",
		Syntax:    "guide",
		Examples:  []string{"guide"},
	},
	{
		Operation: "help",
		ShortDesc: "Mostrar esta ayuda",
		LongDesc:  "Lista los comandos o muestra los detalles de uno.",
		Syntax:    "help [comando]",
		Examples:  []string{"help", "help add"},
	},
	{
		Operation: "exit",
		ShortDesc: "Salir",
		LongDesc:  "Cierra el cliente. 'quit' es equivalente.",
		Syntax:    "exit | quit",
		Examples:  []string{"exit"},
	},
}

// Completer offers tab completion for every command name.
func Completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commandHelps)+1)
	for _, cmd := range commandHelps {
		if cmd.Operation == "help" {
			var topics []readline.PrefixCompleterInterface
			for _, other := range commandHelps {
				topics = append(topics, readline.PcItem(other.Operation))
			}
			items = append(items, readline.PcItem("help", topics...))
			continue
		}
		items = append(items, readline.PcItem(cmd.Operation))
	}
	items = append(items, readline.PcItem("quit"))
	return readline.NewPrefixCompleter(items...)
}
