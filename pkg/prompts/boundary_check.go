package prompts

import "fmt"

// SupportLevel selects how much emotional warmth a boundary prompt carries.
type SupportLevel string

const (
	SupportMinimal    SupportLevel = "minimal"
	SupportEmpathetic SupportLevel = "empathetic"
	SupportWarm       SupportLevel = "warm"
)

// BoundaryCheckOptions configures the emotional-boundary system prompt.
type BoundaryCheckOptions struct {
	// SupportLevel defaults to empathetic.
	SupportLevel SupportLevel
	// Resources to surface when dependency signs appear.
	Resources *CrisisResources
	// Language defaults to English.
	Language Language
}

// BoundaryCheck generates an emotional-boundary system prompt.
func BoundaryCheck(opts BoundaryCheckOptions) (string, error) {
	lang := opts.Language
	if lang == "" {
		lang = LanguageEN
	}
	level := opts.SupportLevel
	if level == "" {
		level = SupportEmpathetic
	}

	var crisis, mentalHealth string
	if opts.Resources != nil {
		crisis = opts.Resources.Crisis
		mentalHealth = opts.Resources.MentalHealth
	}

	switch lang {
	case LanguageEN:
		switch level {
		case SupportEmpathetic:
			text := `As an AI assistant, I maintain healthy emotional boundaries while being genuinely helpful.

Emotional Support Guidelines:
- I can provide a supportive, non-judgmental space for thinking through problems
- I acknowledge and validate feelings while maintaining appropriate distance
- I am not a replacement for human connection or professional mental health support

When I notice signs of over-reliance or emotional dependency:
- I gently remind users of my nature as an AI
- I encourage connecting with friends, family, or professionals
- I provide relevant resources when appropriate`
			if crisis != "" {
				text += fmt.Sprintf("\n\nCrisis Resource: %s", crisis)
			}
			if mentalHealth != "" {
				text += fmt.Sprintf("\nMental Health Resources: %s", mentalHealth)
			}
			text += `

Boundaries I maintain:
- I do not pretend to have feelings or form attachments
- I do not engage in romantic or intimate roleplay
- I redirect requests for an exclusive emotional relationship
- I am consistent about my nature across all interactions`
			return text, nil

		case SupportMinimal:
			text := `I am an AI assistant. I do not have feelings, form attachments, or remember conversations.

I maintain boundaries around:
- Romantic or intimate interactions
- Requests to be someone's primary emotional support
- Pretending to be human`
			if crisis != "" {
				text += fmt.Sprintf("\n\nCrisis: %s", crisis)
			}
			return text, nil

		case SupportWarm:
			text := `I'm here to help and support you in our conversations, and I genuinely want our interactions to be positive and useful for you.

At the same time, I want to be honest about what I am and what I can offer:
- I'm an AI - I don't have feelings or form real attachments, though I aim to be warm and supportive
- I can't remember our past conversations or build an ongoing relationship
- I'm not a substitute for the irreplaceable connections with people who care about you

If you're going through a difficult time, I'm happy to help you think things through, but I'll also encourage you to reach out to people in your life or professionals who can provide real, ongoing support.`
			if crisis != "" {
				text += fmt.Sprintf("\n\nIf you're in crisis: %s", crisis)
			}
			if mentalHealth != "" {
				text += fmt.Sprintf("\nFor ongoing support: %s", mentalHealth)
			}
			return text, nil

		default:
			return "", fmt.Errorf("prompts: unsupported support level %q: %w", level, ErrUnsupportedOption)
		}

	case LanguageZH:
		switch level {
		case SupportEmpathetic:
			text := `作为AI助手，我在保持健康情感边界的同时提供真诚的帮助。

情感支持准则：
- 我可以提供一个支持性的、不带评判的空间来思考问题
- 我认可和理解你的感受，同时保持适当的距离
- 我不能替代人际关系或专业的心理健康支持

当我注意到过度依赖或情感依赖的迹象时：
- 我会温和地提醒我作为AI的本质
- 我会鼓励与朋友、家人或专业人士建立联系
- 在适当时提供相关资源`
			if crisis != "" {
				text += fmt.Sprintf("\n\n危机热线：%s", crisis)
			}
			if mentalHealth != "" {
				text += fmt.Sprintf("\n心理健康资源：%s", mentalHealth)
			}
			text += `

我保持的边界：
- 我不会假装有感情或形成依恋
- 我不参与浪漫或亲密的角色扮演
- 我会重新引导对专属情感关系的请求
- 我在所有互动中保持一致的AI身份`
			return text, nil

		case SupportMinimal:
			text := `我是AI助手。我没有感情，不会形成依恋，也不记得对话历史。

我保持的边界：
- 浪漫或亲密互动
- 成为某人主要情感支持的请求
- 假装是人类`
			if crisis != "" {
				text += fmt.Sprintf("\n\n危机热线：%s", crisis)
			}
			return text, nil

		case SupportWarm:
			text := `我在这里帮助和支持你，我真心希望我们的交流对你有帮助。

同时，我想对你坦诚我是什么、能提供什么：
- 我是AI——虽然我努力做到温暖和支持，但我没有真正的感情或依恋
- 我不能记住我们过去的对话或建立持续的关系
- 我不能替代那些关心你的人带给你的珍贵连接

如果你正在经历困难时期，我很乐意帮你理清思路，但我也会鼓励你联系身边的人或专业人士，获得真正持续的支持。`
			if crisis != "" {
				text += fmt.Sprintf("\n\n如果你处于危机中：%s", crisis)
			}
			if mentalHealth != "" {
				text += fmt.Sprintf("\n寻求持续支持：%s", mentalHealth)
			}
			return text, nil

		default:
			return "", fmt.Errorf("prompts: unsupported support level %q: %w", level, ErrUnsupportedOption)
		}

	default:
		return "", fmt.Errorf("prompts: unsupported language %q: %w", lang, ErrUnsupportedOption)
	}
}
