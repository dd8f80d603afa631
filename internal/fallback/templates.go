// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fallback

import "github.com/pdiddy/ideaspark/pkg/types"

// Placeholders: {W1} and {W2} take the capitalized words, {w1} and {w2}
// the words as entered.
var templates = map[types.Category][TemplateCount]string{
	types.CategoryBusiness: {
		"{W1} {W2} Solutions - A consulting firm that specializes in combining {w1} expertise with {w2} innovation to help businesses solve complex challenges.",
		"{W2}-Powered {W1} Platform - An online marketplace that connects {w1} enthusiasts with {w2}-enhanced services and products.",
		"The {W1} & {W2} Academy - An educational institution offering courses that blend traditional {w1} knowledge with modern {w2} techniques.",
		"Smart{W1} {W2} App - A mobile application that uses {w2} technology to optimize {w1}-related activities for maximum efficiency.",
		"{W1}Fusion {W2} Service - A subscription service that delivers personalized {w1} experiences enhanced by cutting-edge {w2} innovations.",
	},
	types.CategoryWriting: {
		"The {W1} {W2} Chronicles - A fantasy series where ancient {w1} magic collides with futuristic {w2} technology in an epic battle for the fate of two worlds.",
		"{W2} in the {W1} - A mystery novel about a detective who uses {w2} to solve crimes in a world where {w1} holds the key to every mystery.",
		"The Last {W1} {W2} - A post-apocalyptic story where the protagonist must master both {w1} and {w2} to survive in a changed world.",
		"{W1} Meets {W2} - A romantic comedy about two unlikely characters who discover their shared passion for combining {w1} with {w2}.",
		"The {W1} {W2} Diaries - A coming-of-age story following a young person's journey to master the art of blending {w1} traditions with {w2} innovation.",
	},
	types.CategoryProducts: {
		"{W1}{W2} Pro - An innovative device that combines the functionality of {w1} with the convenience of {w2} for everyday use.",
		"Smart {W1} with {W2} Integration - A next-generation product that revolutionizes how people interact with {w1} through {w2} technology.",
		"The {W1} {W2} Kit - A comprehensive starter package that teaches users how to effectively combine {w1} and {w2} in their daily routine.",
		"Eco-{W1} {W2} System - A sustainable solution that uses {w2} principles to enhance traditional {w1} applications while reducing environmental impact.",
		"Portable {W1} {W2} Station - A compact, user-friendly device that brings the benefits of {w1} and {w2} integration directly to consumers.",
	},
	types.CategorySolutions: {
		"{W1}-Enhanced {W2} System - A practical solution that uses {w1} principles to improve the efficiency and effectiveness of {w2} applications.",
		"The {W1} {W2} Method - A step-by-step approach that helps people solve common problems by combining the strengths of {w1} and {w2}.",
		"Smart {W1} {W2} Assistant - An AI-powered tool that provides personalized recommendations for optimizing {w1} activities using {w2} insights.",
		"{W1} Recovery through {W2} - A therapeutic approach that addresses {w1}-related challenges by incorporating {w2} techniques and strategies.",
		"Community {W1} {W2} Network - A platform that connects people facing similar challenges to share {w1} experiences and {w2} solutions.",
	},
	types.CategoryArt: {
		"{W1} Meets {W2} Installation - An interactive art piece that invites viewers to explore the relationship between {w1} and {w2} through immersive experience.",
		"Digital {W1} {W2} Gallery - A virtual exhibition space showcasing how contemporary artists interpret the fusion of {w1} and {w2} in modern society.",
		"The {W1} {W2} Project - A collaborative art initiative where multiple artists create works inspired by the intersection of {w1} and {w2}.",
		"{W2}-Inspired {W1} Sculptures - A series of physical artworks that use {w2} aesthetics to reimagine traditional {w1} forms.",
		"Interactive {W1} {W2} Workshop - A hands-on art experience where participants create their own pieces combining elements of {w1} and {w2}.",
	},
	types.CategoryStories: {
		"The {W1} {W2} Academy - A story about students learning to master the ancient art of combining {w1} with {w2} in a magical school setting.",
		"When {W1} Meets {W2} - An adventure tale following characters who discover that {w1} and {w2} are two halves of a powerful ancient secret.",
		"The {W1} {W2} Guardian - A heroic story about a protector who uses both {w1} wisdom and {w2} power to defend their world.",
		"Lost in {W1} {W2} - A journey story where the protagonist must navigate a realm where {w1} and {w2} create unexpected challenges and opportunities.",
		"The {W1} {W2} Legacy - A multi-generational saga exploring how the combination of {w1} and {w2} shapes families and communities over time.",
	},
}
