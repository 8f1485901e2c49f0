package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[string]string{
	language.English: {
		"app.title":       "Newsdesk",
		"nav.login":       "Log in",
		"nav.logout":      "Log out",
		"nav.register":    "Register",
		"nav.profile":     "Profile",
		"nav.news":        "News",
		"nav.categories":  "Categories",
		"form.submit":     "Submit",
		"form.invalid":    "The form contains errors.",
		"form.username":   "Username",
		"form.password":   "Password",
		"form.repeat":     "Repeat password",
		"form.old":        "Current password",
		"form.new":        "New password",
		"form.mail":       "E-mail",
		"form.old_mail":   "Current e-mail",
		"form.new_mail":   "New e-mail",
		"form.code":       "Validation code",
		"form.title":      "Title",
		"form.text":       "Text",
		"form.category":   "Category",
		"form.name":       "Name",
		"form.describe":   "Description",
		"form.ico":        "Icon",
		"form.mismatch":   "The passwords do not match.",
		"error.internal":  "Something went wrong. Please try again later.",
		"error.forbidden": "You are not allowed to access this page.",
		"error.title":     "Error",
		"home.title":      "Latest news",

		"login.title":               "Log in",
		"login.invalid_credentials": "Invalid username or password.",
		"login.rate_limited":        "Too many attempts. Please try again later.",
		"logout.success":            "You have been logged out.",

		"register.title":   "Register",
		"register.success": "Your account has been created. You can now log in.",
		"register.error":   "This username or e-mail is already taken.",

		"profile.title":            "Profile",
		"profile.password.success": "Your password has been changed.",
		"profile.password.error":   "The current password is wrong.",
		"profile.mail.success":     "Your e-mail has been changed.",
		"profile.mail.error":       "The current e-mail does not match or the new one is already taken.",

		"reset.title":             "Forgotten password",
		"reset.password.title":    "Receive a new password",
		"reset.user.notfound":     "No account uses this e-mail.",
		"reset.object.reinit":     "Password reset",
		"reset.object.new":        "Your new password",
		"reset.send.success":      "A validation code has been sent to your e-mail.",
		"reset.send.failure":      "The e-mail could not be sent. Please try again later.",
		"reset.password.success":  "A new password has been sent to your e-mail.",
		"reset.password.critical": "The new password could not be sent. Please try again later.",
		"reset.password.failure":  "The validation code or the e-mail is wrong.",
		"reset.rate_limited":      "Too many password reset requests. Please try again later.",

		"mail.validation.intro":   "Hello %s, a password reset has been requested for your account.",
		"mail.validation.code":    "Your validation code:",
		"mail.validation.ignore":  "If you did not request it, ignore this e-mail.",
		"mail.new_password.intro": "Hello %s, your password has been reset.",
		"mail.new_password.value": "Your new password:",
		"mail.new_password.hint":  "Change it from your profile after logging in.",

		"category.list.title":       "Categories",
		"category.create.title":     "New category",
		"category.change.title":     "Category #%s",
		"category.create.success":   "The category has been created.",
		"category.create.error":     "A category with this name already exists.",
		"category.change.success":   "The category #%s has been changed.",
		"category.change.error":     "A category with this name already exists.",
		"category.change.not_found": "The category #%s does not exist.",
		"category.delete.success":   "The category #%s has been deleted.",
		"category.delete.in_use":    "The category #%s still has news.",

		"news.list.title":       "News",
		"news.create.title":     "New news",
		"news.change.title":     "News #%s",
		"news.create.success":   "The news has been created.",
		"news.change.success":   "The news #%s has been changed.",
		"news.change.not_found": "The news #%s does not exist.",
		"news.delete.success":   "The news #%s has been deleted.",
		"news.category.unknown": "The selected category does not exist.",
		"news.author.unknown":   "unknown author",
	},
	language.French: {
		"app.title":       "Newsdesk",
		"nav.login":       "Connexion",
		"nav.logout":      "Déconnexion",
		"nav.register":    "Inscription",
		"nav.profile":     "Profil",
		"nav.news":        "Actualités",
		"nav.categories":  "Catégories",
		"form.submit":     "Valider",
		"form.invalid":    "Le formulaire contient des erreurs.",
		"form.username":   "Nom d'utilisateur",
		"form.password":   "Mot de passe",
		"form.repeat":     "Répéter le mot de passe",
		"form.old":        "Mot de passe actuel",
		"form.new":        "Nouveau mot de passe",
		"form.mail":       "E-mail",
		"form.old_mail":   "E-mail actuel",
		"form.new_mail":   "Nouvel e-mail",
		"form.code":       "Code de validation",
		"form.title":      "Titre",
		"form.text":       "Texte",
		"form.category":   "Catégorie",
		"form.name":       "Nom",
		"form.describe":   "Description",
		"form.ico":        "Icône",
		"form.mismatch":   "Les mots de passe ne correspondent pas.",
		"error.internal":  "Une erreur est survenue. Veuillez réessayer plus tard.",
		"error.forbidden": "Vous n'avez pas accès à cette page.",
		"error.title":     "Erreur",
		"home.title":      "Dernières actualités",

		"login.title":               "Connexion",
		"login.invalid_credentials": "Nom d'utilisateur ou mot de passe invalide.",
		"login.rate_limited":        "Trop de tentatives. Veuillez réessayer plus tard.",
		"logout.success":            "Vous êtes déconnecté.",

		"register.title":   "Inscription",
		"register.success": "Votre compte a été créé. Vous pouvez vous connecter.",
		"register.error":   "Ce nom d'utilisateur ou cet e-mail est déjà utilisé.",

		"profile.title":            "Profil",
		"profile.password.success": "Votre mot de passe a été modifié.",
		"profile.password.error":   "Le mot de passe actuel est incorrect.",
		"profile.mail.success":     "Votre e-mail a été modifié.",
		"profile.mail.error":       "L'e-mail actuel ne correspond pas ou le nouveau est déjà utilisé.",

		"reset.title":             "Mot de passe oublié",
		"reset.password.title":    "Recevoir un nouveau mot de passe",
		"reset.user.notfound":     "Aucun compte n'utilise cet e-mail.",
		"reset.object.reinit":     "Réinitialisation du mot de passe",
		"reset.object.new":        "Votre nouveau mot de passe",
		"reset.send.success":      "Un code de validation a été envoyé à votre e-mail.",
		"reset.send.failure":      "L'e-mail n'a pas pu être envoyé. Veuillez réessayer plus tard.",
		"reset.password.success":  "Un nouveau mot de passe a été envoyé à votre e-mail.",
		"reset.password.critical": "Le nouveau mot de passe n'a pas pu être envoyé. Veuillez réessayer plus tard.",
		"reset.password.failure":  "Le code de validation ou l'e-mail est incorrect.",
		"reset.rate_limited":      "Trop de demandes de réinitialisation. Veuillez réessayer plus tard.",

		"mail.validation.intro":   "Bonjour %s, une réinitialisation du mot de passe a été demandée pour votre compte.",
		"mail.validation.code":    "Votre code de validation :",
		"mail.validation.ignore":  "Si vous n'êtes pas à l'origine de cette demande, ignorez cet e-mail.",
		"mail.new_password.intro": "Bonjour %s, votre mot de passe a été réinitialisé.",
		"mail.new_password.value": "Votre nouveau mot de passe :",
		"mail.new_password.hint":  "Modifiez-le depuis votre profil après connexion.",

		"category.list.title":       "Catégories",
		"category.create.title":     "Nouvelle catégorie",
		"category.change.title":     "Catégorie n°%s",
		"category.create.success":   "La catégorie a été créée.",
		"category.create.error":     "Une catégorie porte déjà ce nom.",
		"category.change.success":   "La catégorie n°%s a été modifiée.",
		"category.change.error":     "Une catégorie porte déjà ce nom.",
		"category.change.not_found": "La catégorie n°%s n'existe pas.",
		"category.delete.success":   "La catégorie n°%s a été supprimée.",
		"category.delete.in_use":    "La catégorie n°%s contient encore des actualités.",

		"news.list.title":       "Actualités",
		"news.create.title":     "Nouvelle actualité",
		"news.change.title":     "Actualité n°%s",
		"news.create.success":   "L'actualité a été créée.",
		"news.change.success":   "L'actualité n°%s a été modifiée.",
		"news.change.not_found": "L'actualité n°%s n'existe pas.",
		"news.delete.success":   "L'actualité n°%s a été supprimée.",
		"news.category.unknown": "La catégorie choisie n'existe pas.",
		"news.author.unknown":   "auteur inconnu",
	},
}
