package bot

import (
	"fmt"
	"html"
	"strings"

	"github.com/ByPavel22/ByPavel22Bot/internal/service"
)

const welcomeText = `👋 Привет, %s!

Я бот-помощник. Все ваши сообщения будут переправлены администратору.

📋 Доступные команды:
/start - Начальное сообщение
/help - Помощь и информация
/feedback - Оставить отзыв
/about - О боте

Просто напишите сообщение, и я передам его!`

const helpText = `📚 Помощь по боту:

• Просто напишите любое сообщение, и оно будет отправлено администратору
• Администратор может ответить на ваше сообщение
• Вы можете использовать команды для навигации

🛠 Команды:
/start - Начало работы
/help - Эта справка
/feedback - Оставить отзыв о работе бота
/about - Информация о боте

📨 Все сообщения сохраняются для истории`

const aboutText = `🤖 Бот для связи с администратором

Версия: 2.0
Разработчик: @ByPavel22

📊 Функции:
• Пересылка сообщений администратору
• Ответы на сообщения пользователей
• Система отзывов
• Статистика использования
• История всех сообщений

🔒 Ваши данные защищены и не передаются третьим лицам`

// formatStats renders the admin usage summary.
func formatStats(stats service.Stats) string {
	var b strings.Builder
	b.WriteString("📊 <b>Статистика бота</b>\n\n")
	b.WriteString(fmt.Sprintf("👥 Пользователей: <b>%d</b>\n", stats.TotalUsers))
	b.WriteString(fmt.Sprintf("💬 Сообщений: <b>%d</b>\n", stats.TotalMessages))
	b.WriteString("➖➖➖➖➖➖➖➖➖➖\n")
	b.WriteString("<b>Последние пользователи:</b>\n")
	if len(stats.Recent) == 0 {
		b.WriteString("• пока никого нет")
		return b.String()
	}
	for _, user := range stats.Recent {
		line := "• " + escape(user.DisplayName())
		if user.Username != "" {
			line += fmt.Sprintf(" (@%s)", escape(user.Username))
		}
		line += fmt.Sprintf(" — %s", user.CreatedAt.Format("2006-01-02 15:04"))
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func escape(s string) string {
	return html.EscapeString(s)
}
