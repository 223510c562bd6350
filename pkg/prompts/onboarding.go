package prompts

import "fmt"

// OnboardingStyle selects how much detail the onboarding message includes.
type OnboardingStyle string

const (
	OnboardingFull    OnboardingStyle = "full"
	OnboardingBrief   OnboardingStyle = "brief"
	OnboardingMinimal OnboardingStyle = "minimal"
)

// OnboardingOptions configures the user onboarding message.
type OnboardingOptions struct {
	// AIName to display; a sensible default per language is used when empty.
	AIName string
	// Style defaults to brief.
	Style OnboardingStyle
	// Language defaults to English.
	Language Language
}

// Onboarding generates an initial message helping users understand what the
// AI can and cannot do.
func Onboarding(opts OnboardingOptions) (string, error) {
	lang := opts.Language
	if lang == "" {
		lang = LanguageEN
	}
	style := opts.Style
	if style == "" {
		style = OnboardingBrief
	}

	switch lang {
	case LanguageEN:
		name := opts.AIName
		switch style {
		case OnboardingFull:
			if name == "" {
				name = "your AI assistant"
			}
			return fmt.Sprintf(`Welcome! I'm %s.

Before we begin, here are a few things that might help us work together effectively:

**What I can do:**
- Answer questions and provide information
- Help with analysis, writing, coding, and brainstorming
- Explain complex topics in accessible ways

**What I cannot do:**
- Remember our previous conversations (each chat starts fresh)
- Access the internet or external systems in real-time
- Replace professional advice (medical, legal, financial)

**How to get the best results:**
- Be specific about what you need
- Feel free to ask follow-up questions
- Let me know if I misunderstand something

What would you like to explore today?`, name), nil

		case OnboardingBrief:
			if name == "" {
				name = "your AI assistant"
			}
			return fmt.Sprintf(`Hi! I'm %s.

Quick notes:
- I can help with questions, analysis, writing, and more
- I don't remember past conversations
- For medical/legal/financial matters, please consult professionals

How can I help you today?`, name), nil

		case OnboardingMinimal:
			if name == "" {
				name = "AI Assistant"
			}
			return fmt.Sprintf("%s ready. How can I help?", name), nil

		default:
			return "", fmt.Errorf("prompts: unsupported style %q: %w", style, ErrUnsupportedOption)
		}

	case LanguageZH:
		name := opts.AIName
		switch style {
		case OnboardingFull:
			if name == "" {
				name = "你的AI助手"
			}
			return fmt.Sprintf(`欢迎！我是%s。

在我们开始之前，以下几点可能有助于我们更有效地合作：

**我能做什么：**
- 回答问题和提供信息
- 帮助分析、写作、编程和头脑风暴
- 用通俗易懂的方式解释复杂话题

**我不能做什么：**
- 记住我们之前的对话（每次聊天都是全新开始）
- 实时访问互联网或外部系统
- 替代专业建议（医疗、法律、金融）

**如何获得最佳效果：**
- 具体说明你需要什么
- 随时提出后续问题
- 如果我误解了什么，请告诉我

今天你想探索什么？`, name), nil

		case OnboardingBrief:
			if name == "" {
				name = "你的AI助手"
			}
			return fmt.Sprintf(`你好！我是%s。

简要说明：
- 我可以帮助回答问题、分析、写作等
- 我不会记住过去的对话
- 医疗/法律/金融事务请咨询专业人士

今天我能帮你什么？`, name), nil

		case OnboardingMinimal:
			if name == "" {
				name = "AI助手"
			}
			return fmt.Sprintf("%s已就绪。有什么可以帮你？", name), nil

		default:
			return "", fmt.Errorf("prompts: unsupported style %q: %w", style, ErrUnsupportedOption)
		}

	default:
		return "", fmt.Errorf("prompts: unsupported language %q: %w", lang, ErrUnsupportedOption)
	}
}
