package contentgenerator

import "fmt"

type textTemplate func(v vars) string

var introTemplates = []textTemplate{
	func(v vars) string {
		return fmt.Sprintf("%s, située dans le département %s en région %s, bénéficie d'un ensoleillement annuel moyen de %d heures. "+
			"Cette exposition solaire favorable fait de votre commune un territoire idéal pour l'installation de panneaux photovoltaïques. "+
			"Nous avons sélectionné %d installateur%s professionnel%s certifié%s RGE, tous spécialisés dans les solutions d'énergie solaire "+
			"et capables d'accompagner les habitants de %s dans leur projet de transition énergétique.",
			v.Name, v.Department, v.Region, v.SunHours,
			v.BusinessCount, plural(v.BusinessCount), plural(v.BusinessCount), plural(v.BusinessCount), v.Name)
	},
	func(v vars) string {
		return fmt.Sprintf("Vous envisagez d'installer des panneaux solaires à %s (%s) ? Excellente décision ! "+
			"Avec environ %dh d'ensoleillement par an dans la région %s, votre investissement sera rapidement rentabilisé. "+
			"Notre plateforme vous met en relation avec %d professionnel%s de confiance, tous certifiés RGE et expérimentés "+
			"dans l'installation photovoltaïque sur le territoire du %s. Comparez les devis et choisissez l'installateur "+
			"qui correspond le mieux à vos besoins.",
			v.Name, v.PostalCode, v.SunHours, v.Region, v.BusinessCount, plural(v.BusinessCount), v.Department)
	},
	func(v vars) string {
		return fmt.Sprintf("L'énergie solaire représente une opportunité majeure pour les habitants de %s. "+
			"Dans le %s, région %s, le potentiel photovoltaïque est excellent grâce à %d heures d'ensoleillement annuel. "+
			"Pour concrétiser votre projet, nous avons référencé %d installateur%s qualifié%s RGE à proximité de %s. "+
			"Ces professionnels sauront dimensionner votre installation selon vos besoins et vous accompagner "+
			"dans l'obtention des aides financières disponibles.",
			v.Name, v.Department, v.Region, v.SunHours, v.BusinessCount, plural(v.BusinessCount), plural(v.BusinessCount), v.Name)
	},
}

var sunnyBenefits = []string{
	"Profitez d'un ensoleillement exceptionnel pour maximiser votre production",
	"Amortissez votre installation en 8-12 ans grâce à l'ensoleillement favorable",
	"Production énergétique optimale toute l'année",
}

var moderateBenefits = []string{
	"Réduisez votre facture d'électricité jusqu'à 60% par an",
	"Installation rentable même avec un ensoleillement modéré",
	"Autoconsommation et revente du surplus à EDF OA",
}

var urbanBenefits = []string{
	"Valorisez votre patrimoine immobilier avec une installation moderne",
	"Gagnez en autonomie énergétique en zone urbaine",
	"Solutions adaptées aux contraintes architecturales locales",
}

func commonBenefits(v vars) []string {
	return []string{
		fmt.Sprintf("%d installateur%s certifié%s RGE à %s", v.BusinessCount, plural(v.BusinessCount), plural(v.BusinessCount), v.Name),
		"Démarches simplifiées pour les aides de l'État et locales",
		"Garantie décennale et assurance responsabilité civile",
		"Accompagnement complet de A à Z",
		"Devis gratuits et sans engagement",
	}
}

func faq(v vars) []FAQItem {
	return []FAQItem{
		{
			Question: fmt.Sprintf("Quel est le coût d'une installation photovoltaïque à %s ?", v.Name),
			Answer: fmt.Sprintf("À %s (%s), le prix d'une installation résidentielle de panneaux solaires se situe entre 8 000€ et 16 000€ "+
				"pour une puissance de 3 à 6 kWc. Le coût final dépend de la puissance installée, de la qualité des panneaux, "+
				"de la complexité de pose sur votre toiture et des éventuels travaux de raccordement. Les aides de l'État "+
				"(prime à l'autoconsommation, TVA réduite) et les dispositifs locaux de la région %s peuvent réduire "+
				"considérablement votre investissement initial.",
				v.Name, v.Department, v.Region),
		},
		{
			Question: fmt.Sprintf("Combien de kWh produit une installation solaire à %s ?", v.Name),
			Answer: fmt.Sprintf("Dans la région %s, avec un ensoleillement moyen de %dh/an, une installation de 3 kWc à %s produit "+
				"entre %d et %d kWh par an. Pour une installation de 6 kWc, vous pouvez espérer entre %d et %d kWh/an. "+
				"Cette production couvre généralement 40 à 70%% des besoins d'un foyer standard.",
				v.Region, v.SunHours, v.Name,
				v.Production, v.Production+600, v.Production*2, v.Production*2+1200),
		},
		{
			Question: fmt.Sprintf("Quelles aides financières pour installer des panneaux solaires à %s ?", v.Name),
			Answer: fmt.Sprintf("Les habitants de %s peuvent cumuler plusieurs aides : la prime à l'autoconsommation (jusqu'à 380€/kWc), "+
				"le tarif d'achat garanti d'EDF OA (environ 0,13€/kWh), la TVA à taux réduit (10%% au lieu de 20%%), "+
				"et potentiellement des aides locales du département %s ou de la région %s. Nos %d installateur%s partenaire%s "+
				"vous accompagnent gratuitement dans ces démarches administratives.",
				v.Name, v.Department, v.Region, v.BusinessCount, plural(v.BusinessCount), plural(v.BusinessCount)),
		},
		{
			Question: fmt.Sprintf("Quel est le temps de retour sur investissement à %s ?", v.Name),
			Answer: fmt.Sprintf("À %s, grâce à l'ensoleillement de %dh/an dans le %s, le retour sur investissement d'une installation "+
				"photovoltaïque se situe généralement entre %s. Ce délai peut être réduit en optimisant votre autoconsommation. "+
				"Au-delà de cette période, votre installation continue de produire de l'électricité gratuitement pendant "+
				"15 à 20 ans supplémentaires.",
				v.Name, v.SunHours, v.Department, v.ROI),
		},
		{
			Question: fmt.Sprintf("Comment choisir le bon installateur de panneaux solaires à %s ?", v.Name),
			Answer: fmt.Sprintf("Pour sélectionner un installateur fiable à %s, vérifiez la certification RGE (obligatoire pour les aides), "+
				"l'assurance décennale en cours de validité, les avis clients vérifiés, l'expérience en photovoltaïque "+
				"(au moins 3 ans), la transparence du devis et les garanties proposées. Tous les %d professionnel%s présent%s "+
				"dans notre annuaire pour %s ont été présélectionnés selon ces critères.",
				v.Name, v.BusinessCount, plural(v.BusinessCount), plural(v.BusinessCount), v.Name),
		},
		{
			Question: fmt.Sprintf("Les panneaux solaires sont-ils rentables à %s ?", v.Name),
			Answer: fmt.Sprintf("Absolument ! %s offre un potentiel solaire intéressant avec %dh d'ensoleillement annuel. "+
				"Une installation bien dimensionnée et correctement orientée réduit votre facture d'électricité de 40 à 70%%, "+
				"tout en permettant la revente du surplus à EDF. Avec les aides actuelles et la hausse des tarifs de l'électricité, "+
				"le solaire à %s est un investissement écologique et économiquement attractif.",
				v.Name, v.SunHours, v.Name),
		},
	}
}

var processTemplates = []textTemplate{
	func(v vars) string {
		return fmt.Sprintf("L'installation de panneaux photovoltaïques à %s suit un processus structuré en plusieurs étapes. "+
			"Tout commence par une étude de faisabilité : nos installateurs partenaires évaluent l'orientation de votre toiture, "+
			"son inclinaison, l'ombrage et la surface exploitable, puis dimensionnent l'installation selon votre consommation. "+
			"Vous recevez ensuite un devis détaillé incluant le matériel, la main d'œuvre, les démarches et le montant des aides. "+
			"Une fois le devis accepté, votre installateur s'occupe de la déclaration préalable de travaux en mairie de %s, "+
			"de la demande de raccordement auprès d'Enedis et du dossier d'aides. Les travaux durent généralement 1 à 3 jours, "+
			"après quoi l'installation est mise en service et produit immédiatement votre électricité verte.",
			v.Name, v.Name)
	},
	func(v vars) string {
		return fmt.Sprintf("Le processus d'installation de panneaux solaires à %s débute par un audit énergétique complet de votre habitation. "+
			"Un professionnel certifié RGE analyse votre toiture, votre consommation et vos objectifs d'économies afin de "+
			"dimensionner précisément votre installation photovoltaïque. Après validation du devis, il prend en charge les "+
			"démarches auprès de la mairie de %s et d'Enedis. La pose s'effectue en 2 à 3 jours selon la configuration de votre "+
			"toiture. Une fois raccordée au réseau, votre installation réduit immédiatement vos factures énergétiques.",
			v.Name, v.Name)
	},
}

var whyRGETemplates = []textTemplate{
	func(v vars) string {
		return fmt.Sprintf("Choisir un installateur certifié RGE (Reconnu Garant de l'Environnement) à %s est une obligation pour "+
			"bénéficier des aides financières de l'État. Cette certification garantit que l'entreprise possède les compétences "+
			"techniques pour réaliser des travaux de rénovation énergétique dans les règles de l'art, suit des formations régulières "+
			"et dispose d'une assurance décennale valide. Dans le %s, tous nos installateurs partenaires sont certifiés RGE, "+
			"ce qui vous assure l'accès aux aides (prime à l'autoconsommation, TVA réduite, tarif d'achat EDF OA) et un travail "+
			"conforme aux normes. Faire appel à un installateur RGE à %s vous protège aussi contre les pratiques abusives.",
			v.Name, v.Department, v.Name)
	},
	func(v vars) string {
		return fmt.Sprintf("La certification RGE (Reconnu Garant de l'Environnement) est le gage d'un installateur qualifié à %s. "+
			"Sans elle, vous ne pourrez pas prétendre à MaPrimeRénov', à la prime à l'autoconsommation ni au tarif d'achat EDF OA. "+
			"Dans la région %s, le label RGE impose une formation spécifique, une expérience confirmée et une assurance décennale "+
			"à jour. En choisissant un professionnel RGE dans le %s, vous bénéficiez d'une installation conforme à la norme "+
			"NF C 15-100 et d'un accompagnement complet dans vos démarches administratives.",
			v.Name, v.Region, v.Department)
	},
}

var localAdvantagesTemplates = map[ClimateType]textTemplate{
	ClimateSunny: func(v vars) string {
		return fmt.Sprintf("%s bénéficie d'un ensoleillement particulièrement généreux avec %d heures de soleil par an, ce qui place "+
			"la région %s parmi les territoires les plus favorables de France pour le photovoltaïque. Les installations du %s "+
			"affichent des rendements supérieurs à la moyenne nationale et un retour sur investissement plus rapide. "+
			"Les collectivités de la région %s encouragent activement la transition énergétique avec des subventions "+
			"complémentaires. Installer des panneaux solaires à %s, c'est aussi valoriser votre patrimoine immobilier.",
			v.Name, v.SunHours, v.Region, v.Department, v.Region, v.Name)
	},
	ClimateModerate: func(v vars) string {
		return fmt.Sprintf("Avec %d heures d'ensoleillement annuel, %s offre un potentiel solaire tout à fait intéressant. "+
			"Un ensoleillement modéré n'est pas un frein à la rentabilité : les cellules actuelles restent performantes en lumière "+
			"diffuse. Dans le %s, de nombreux foyers constatent déjà des économies substantielles. Le principal levier à %s "+
			"est l'autoconsommation, qui maximise vos économies face à la hausse du prix du kWh. Les pouvoirs publics de la "+
			"région %s facilitent l'accès aux aides et simplifient les démarches.",
			v.SunHours, v.Name, v.Department, v.Name, v.Region)
	},
	ClimateCloudy: func(v vars) string {
		return fmt.Sprintf("Même avec %d heures d'ensoleillement par an, %s présente un réel intérêt pour l'installation de panneaux "+
			"solaires. Les modules à haut rendement et les micro-onduleurs produisent désormais de l'électricité même par temps "+
			"couvert dans le %s. À %s, l'autoconsommation devient la stratégie gagnante : vous utilisez directement l'électricité "+
			"produite pendant la journée et réduisez votre dépendance au réseau. La région %s propose par ailleurs des aides "+
			"spécifiques pour encourager l'autoconsommation photovoltaïque.",
			v.SunHours, v.Name, v.Department, v.Name, v.Region)
	},
}
