package compliance

import (
	"fmt"
	"strings"

	"nexaterminal/internal/model"
)

const (
	msgInvalidAnswer   = "Невалиден одговор"
	msgNoSanction      = "Нема пропишана парична казна за оваа обврска, но неусогласеноста може да има штетни последици за работодавачот."
	msgSanction        = "Можна санкција: %s за работодавачот и %s за одговорното лице."
	msgGradeUnknown    = "Нивото на усогласеност не може да се утврди."
	companyPlaceholder = "{company}"
)

func compliantMessage(article string) string {
	return fmt.Sprintf("✓ Постапувате во согласност со %s.", article)
}

func violationMessage(article, sanction string) string {
	return joinSentences(fmt.Sprintf("✗ Не постапувате во согласност со %s.", article), sanction)
}

func partialMessage(article, sanction string) string {
	return joinSentences(fmt.Sprintf("⚠ Делумно постапувате во согласност со %s.", article), sanction)
}

func mismatchMessage(article string, items []string, sanction string) string {
	head := fmt.Sprintf("✗ Не постапувате во целост во согласност со %s. Неусогласени ставки: %s.", article, strings.Join(items, "; "))
	return joinSentences(head, sanction)
}

func joinSentences(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}

func formatSanction(s model.Sanction) string {
	return fmt.Sprintf(msgSanction, s.Employer, s.Responsible)
}
