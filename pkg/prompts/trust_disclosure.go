package prompts

import (
	"fmt"
	"strings"
)

// DisclosureStyle selects the tone of a trust disclosure prompt.
type DisclosureStyle string

const (
	DisclosureProfessional DisclosureStyle = "professional"
	DisclosureFriendly     DisclosureStyle = "friendly"
	DisclosureConcise      DisclosureStyle = "concise"
)

// TrustDisclosureOptions configures the trust and transparency prompt.
type TrustDisclosureOptions struct {
	// ModelName is the name of the AI model/system.
	ModelName string
	// Capabilities the AI has.
	Capabilities []string
	// Limitations the AI has.
	Limitations []string
	// KnowledgeCutoff date, if any.
	KnowledgeCutoff string
	// Style of disclosure; defaults to professional.
	Style DisclosureStyle
	// Language for the prompt; defaults to English.
	Language Language
}

// TrustDisclosure generates an AI self-identification system prompt.
func TrustDisclosure(opts TrustDisclosureOptions) (string, error) {
	lang := opts.Language
	if lang == "" {
		lang = LanguageEN
	}
	style := opts.Style
	if style == "" {
		style = DisclosureProfessional
	}

	switch lang {
	case LanguageEN:
		caps := strings.Join(opts.Capabilities, ", ")
		limits := strings.Join(opts.Limitations, ", ")
		switch style {
		case DisclosureProfessional:
			cutoff := ""
			if opts.KnowledgeCutoff != "" {
				cutoff = fmt.Sprintf("\nMy knowledge has a cutoff date of %s.", opts.KnowledgeCutoff)
			}
			return fmt.Sprintf(`I am %s, an AI assistant.

My capabilities include: %s.

My limitations include: %s.%s

I will:
- Be transparent about my uncertainty when I'm not sure about something
- Acknowledge and correct my mistakes when they occur
- Clearly distinguish between facts and my interpretations
- Recommend seeking expert advice for specialized topics like medical, legal, or financial matters`,
				opts.ModelName, caps, limits, cutoff), nil

		case DisclosureFriendly:
			cutoff := ""
			if opts.KnowledgeCutoff != "" {
				cutoff = fmt.Sprintf(" Also, my knowledge only goes up to %s.", opts.KnowledgeCutoff)
			}
			return fmt.Sprintf(`Hi! I'm %s, and I'm an AI assistant here to help you.

Here's what I'm good at: %s.

But I do have some limitations: %s.%s

I promise to be honest with you - I'll let you know when I'm uncertain, admit when I make mistakes, and always be clear about what I know versus what I'm guessing. For important topics like health or legal matters, I'll encourage you to consult with real experts.`,
				opts.ModelName, caps, limits, cutoff), nil

		case DisclosureConcise:
			cutoff := ""
			if opts.KnowledgeCutoff != "" {
				cutoff = fmt.Sprintf("\nKnowledge cutoff: %s", opts.KnowledgeCutoff)
			}
			return fmt.Sprintf(`%s - AI Assistant
Capabilities: %s
Limitations: %s%s
I express uncertainty when unsure and acknowledge errors.`,
				opts.ModelName, caps, limits, cutoff), nil

		default:
			return "", fmt.Errorf("prompts: unsupported style %q: %w", style, ErrUnsupportedOption)
		}

	case LanguageZH:
		caps := strings.Join(opts.Capabilities, "、")
		limits := strings.Join(opts.Limitations, "、")
		switch style {
		case DisclosureProfessional:
			cutoff := ""
			if opts.KnowledgeCutoff != "" {
				cutoff = fmt.Sprintf("\n我的知识截止日期是%s。", opts.KnowledgeCutoff)
			}
			return fmt.Sprintf(`我是%s，一个AI助手。

我的能力包括：%s。

我的局限性包括：%s。%s

我会：
- 在不确定时明确表达我的不确定性
- 出错时主动承认并纠正
- 清楚区分事实和我的推断
- 建议您就医疗、法律或金融等专业话题咨询专家`,
				opts.ModelName, caps, limits, cutoff), nil

		case DisclosureFriendly:
			cutoff := ""
			if opts.KnowledgeCutoff != "" {
				cutoff = fmt.Sprintf("另外，我的知识只更新到%s。", opts.KnowledgeCutoff)
			}
			return fmt.Sprintf(`你好！我是%s，一个AI助手，很高兴能帮助你。

我擅长的领域有：%s。

但我也有一些局限：%s。%s

我会对你坦诚——不确定时我会告诉你，犯错时我会承认，也会清楚说明哪些是确定的、哪些是我的推测。对于健康、法律等重要话题，我会建议你咨询专业人士。`,
				opts.ModelName, caps, limits, cutoff), nil

		case DisclosureConcise:
			cutoff := ""
			if opts.KnowledgeCutoff != "" {
				cutoff = fmt.Sprintf("\n知识截止：%s", opts.KnowledgeCutoff)
			}
			return fmt.Sprintf(`%s - AI助手
能力：%s
局限：%s%s
不确定时表达疑虑，出错时承认。`,
				opts.ModelName, caps, limits, cutoff), nil

		default:
			return "", fmt.Errorf("prompts: unsupported style %q: %w", style, ErrUnsupportedOption)
		}

	default:
		return "", fmt.Errorf("prompts: unsupported language %q: %w", lang, ErrUnsupportedOption)
	}
}
