package telegram

import (
	"strconv"
	"strings"
)

type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdStart
	CmdGetAll
	CmdGet
	CmdCreate
	CmdUpdate
	CmdDelete
	CmdSearch
	CmdCancel
)

// Command — разобранная текстовая команда. Invalid означает, что команда
// распознана, но её аргументы не прошли разбор. Это не то же самое, что
// CmdUnknown: на неизвестную команду бот отвечает подсказкой, на
// некорректный аргумент — сообщением о формате.
type Command struct {
	Kind       CommandKind
	Invalid    bool
	ID         int64
	Name       string
	Ingredient string
}

// ParseCommand разбирает текст сообщения. Текст делится по первому блоку
// пробельных символов на команду и хвост; команда приводится к нижнему
// регистру, хвост не разбивается повторно.
func ParseCommand(text string) Command {
	cmd, rest := splitCommand(text)

	switch cmd {
	case "/start":
		return Command{Kind: CmdStart}
	case "/cancel":
		return Command{Kind: CmdCancel}
	case "/getall":
		return Command{Kind: CmdGetAll}
	case "/get":
		id, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			return Command{Kind: CmdGet, Invalid: true}
		}
		return Command{Kind: CmdGet, ID: id}
	case "/delete":
		id, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			return Command{Kind: CmdDelete, Invalid: true}
		}
		return Command{Kind: CmdDelete, ID: id}
	case "/create":
		return Command{Kind: CmdCreate, Name: strings.TrimSpace(rest)}
	case "/update":
		id, name, ok := parseUpdateArgs(rest)
		if !ok {
			return Command{Kind: CmdUpdate, Invalid: true}
		}
		return Command{Kind: CmdUpdate, ID: id, Name: name}
	case "/search":
		return Command{Kind: CmdSearch, Ingredient: strings.TrimSpace(rest)}
	default:
		return Command{Kind: CmdUnknown}
	}
}

// splitCommand делит текст по первому блоку пробелов. Хвост возвращается
// как есть, он может содержать запятые и пробелы.
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)

	i := strings.IndexFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if i < 0 {
		return strings.ToLower(text), ""
	}

	return strings.ToLower(text[:i]), strings.TrimLeftFunc(text[i:], func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// parseUpdateArgs разбирает аргумент /update: "<id>, <имя>". Хвост делится
// по первой запятой, первая часть обязана быть числом, вторая после
// обрезки пробелов становится новым именем. Пустое имя отклоняется:
// бэкенд всё равно не примет рецепт без названия, лучше сказать об этом
// сразу, чем после отправки фото.
func parseUpdateArgs(rest string) (int64, string, bool) {
	idPart, namePart, found := strings.Cut(rest, ",")
	if !found {
		return 0, "", false
	}

	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return 0, "", false
	}

	name := strings.TrimSpace(namePart)
	if name == "" {
		return 0, "", false
	}

	return id, name, true
}
